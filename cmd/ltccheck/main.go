// Command ltccheck bakes an initial-guess LTC table and reports how well
// each slot is normalized and how faithfully it survives the bake record.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gekko3d/ltc"
	"github.com/gekko3d/ltc/internal/config"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Load(args)
	if errors.Is(err, flag.ErrHelp) {
		fmt.Println("LTC Fitter: table check")
		fmt.Println(`Based on work of Heitz et al: "Linearly Transformed Cosines"`)
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return 2
	}

	logger := ltc.NewFileLogger("ltccheck", cfg.Logging.Level == "debug", ltc.DefaultLogFile(cfg.Logging.LogFile), true)
	defer logger.Sync()

	logger.Infof("%s", cfg.Summary())

	report, tbl, err := runCheck(cfg, logger)
	if err != nil {
		logger.Errorf("check failed: %v", err)
		return 1
	}
	if !tbl.Complete() {
		logger.Errorf("table %s incomplete: %d of %d slots", tbl.ID, tbl.Filled(), cfg.Resolution*cfg.Resolution)
		return 1
	}

	if err := writeReport(cfg.Output, report); err != nil {
		logger.Errorf("writing report: %v", err)
		return 1
	}

	logger.Infof("table %s: worst integral error %.4f, worst round trip error %.3g, %d skipped directions",
		report.TableID, report.WorstIntegral, report.WorstRoundTrip, report.SkippedDirections)
	logger.Infof("report written to %s", cfg.Output)
	return 0
}

func writeReport(path string, report *Report) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
