package main

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gekko3d/ltc"
	"github.com/gekko3d/ltc/internal/config"
)

var normal = mgl64.Vec3{0, 0, 1}

// probeDirections compare an encoded lobe against its decoded copy.
var probeDirections = []mgl64.Vec3{
	{0, 0, 1},
	mgl64.Vec3{0.5, 0, 0.85}.Normalize(),
	mgl64.Vec3{-0.5, 0, 0.85}.Normalize(),
	mgl64.Vec3{0.2, 0.4, 0.9}.Normalize(),
	mgl64.Vec3{-0.7, -0.1, 0.3}.Normalize(),
}

// CellReport is the check result for one table slot.
type CellReport struct {
	RoughnessBucket int           `yaml:"roughness_bucket"`
	AngleBucket     int           `yaml:"angle_bucket"`
	Roughness       float64       `yaml:"roughness"`
	ViewAngle       float64       `yaml:"view_angle"`
	Record          ltc.StoreData `yaml:"record"`
	Normalization   ltc.Estimate  `yaml:"normalization"`
	Integral        ltc.Estimate  `yaml:"integral"`
	RoundTripError  float64       `yaml:"round_trip_error"`
}

// Report is written to the output file.
type Report struct {
	TableID           ltc.TableId      `yaml:"table_id"`
	Settings          *config.Settings `yaml:"settings"`
	WorstIntegral     float64          `yaml:"worst_integral_error"`
	WorstRoundTrip    float64          `yaml:"worst_round_trip_error"`
	SkippedDirections int              `yaml:"skipped_directions"`
	Cells             []CellReport     `yaml:"cells"`
}

type rowResult struct {
	row   int
	cells []CellReport
	err   error
}

// runCheck bakes the initial-guess table with cfg.Threads workers, one
// model and one sampler per worker, and checks every slot.
func runCheck(cfg *config.Settings, log ltc.Logger) (*Report, *ltc.Table, error) {
	tbl, err := ltc.NewTable(cfg.Resolution, cfg.MinRoughness, cfg.MaxRoughness)
	if err != nil {
		return nil, nil, err
	}
	log.Infof("checking table %s (%dx%d, %s) with %d threads", tbl.ID, cfg.Resolution, cfg.Resolution, cfg.BRDF, cfg.Threads)

	tasks := make(chan int, cfg.Resolution)
	results := make(chan rowResult, cfg.Resolution)

	var wg sync.WaitGroup
	for w := 0; w < cfg.Threads; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			model := ltc.NewModel()
			model.SetLogger(log)
			for row := range tasks {
				// seeding per row keeps the report independent of the thread count
				sampler := ltc.NewSeededSampler(cfg.Seed + int64(row))
				cells, err := checkRow(&model, tbl, row, sampler, cfg.ErrorSamples)
				log.Debugf("worker %d finished roughness bucket %d", id, row)
				results <- rowResult{row: row, cells: cells, err: err}
			}
		}(w)
	}

	for row := 0; row < cfg.Resolution; row++ {
		tasks <- row
	}
	close(tasks)

	go func() {
		wg.Wait()
		close(results)
	}()

	rows := make([][]CellReport, cfg.Resolution)
	var firstErr error
	for res := range results {
		if res.err != nil {
			if firstErr == nil {
				firstErr = res.err
			}
			continue
		}
		rows[res.row] = res.cells
	}
	if firstErr != nil {
		return nil, nil, firstErr
	}

	report := &Report{TableID: tbl.ID, Settings: cfg}
	for _, cells := range rows {
		for _, c := range cells {
			if err := tbl.Set(c.RoughnessBucket, c.AngleBucket, c.Record); err != nil {
				return nil, nil, err
			}
			report.Cells = append(report.Cells, c)
			report.WorstIntegral = math.Max(report.WorstIntegral, math.Abs(c.Integral.Mean-1))
			report.WorstRoundTrip = math.Max(report.WorstRoundTrip, c.RoundTripError)
			report.SkippedDirections += c.Normalization.Skipped + c.Integral.Skipped
		}
	}
	return report, tbl, nil
}

func checkRow(model *ltc.Model, tbl *ltc.Table, row int, sampler ltc.Sampler, samples int) ([]CellReport, error) {
	roughness := tbl.Roughness(row)
	cells := make([]CellReport, 0, tbl.Resolution)

	for a := 0; a < tbl.Resolution; a++ {
		angle := tbl.ViewAngle(a)
		view := ltc.ViewDirection(angle)

		model.SetLTCParameters(ltc.InitialGuess(roughness))
		model.SetBaseFrame(ltc.FrameFromDirection(ltc.Reflect(view, normal)))
		model.SetAmplitude(1)

		norm, err := ltc.EstimateNormalization(model, view, sampler, samples)
		if err != nil {
			return nil, err
		}
		integral, err := ltc.EstimateIntegral(model, view, sampler, samples)
		if err != nil {
			return nil, err
		}

		record := model.StoreData()
		cells = append(cells, CellReport{
			RoughnessBucket: row,
			AngleBucket:     a,
			Roughness:       roughness,
			ViewAngle:       angle,
			Record:          record,
			Normalization:   norm,
			Integral:        integral,
			RoundTripError:  roundTripError(model, record, view),
		})
	}
	return cells, nil
}

// roundTripError is the largest relative pdf difference between a model
// and the model decoded from its record, over the probe directions.
func roundTripError(model *ltc.Model, record ltc.StoreData, view mgl64.Vec3) float64 {
	decoded := ltc.NewModel()
	decoded.SetStoreData(record)

	worst := 0.0
	for _, dir := range probeDirections {
		_, want, err := model.Evaluate(dir, view)
		if err != nil {
			continue
		}
		_, got, err := decoded.Evaluate(dir, view)
		if err != nil {
			return math.Inf(1)
		}
		worst = math.Max(worst, math.Abs(want-got)/math.Max(1, math.Abs(want)))
	}
	return worst
}
