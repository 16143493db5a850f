package ltc

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// maxViewAngle keeps the last view bucket just off grazing, where the
// view frame degenerates.
const maxViewAngle = math.Pi/2 - 1e-4

// TableId identifies one bake.
type TableId string

// Table holds the bake records of a fit, one per (roughness bucket,
// view-angle bucket), stored row-major by roughness.
type Table struct {
	ID           TableId
	Resolution   int
	MinRoughness float64
	MaxRoughness float64

	records []StoreData
	filled  []bool
	next    int
}

// NewTable allocates an empty resolution x resolution table.
func NewTable(resolution int, minRoughness, maxRoughness float64) (*Table, error) {
	if resolution < 2 {
		return nil, fmt.Errorf("table resolution must be at least 2, got %d", resolution)
	}
	if minRoughness > maxRoughness {
		return nil, fmt.Errorf("table roughness range is inverted: [%g, %g]", minRoughness, maxRoughness)
	}
	n := resolution * resolution
	return &Table{
		ID:           TableId(uuid.NewString()),
		Resolution:   resolution,
		MinRoughness: minRoughness,
		MaxRoughness: maxRoughness,
		records:      make([]StoreData, n),
		filled:       make([]bool, n),
	}, nil
}

func (t *Table) index(roughness, angle int) (int, error) {
	if roughness < 0 || roughness >= t.Resolution || angle < 0 || angle >= t.Resolution {
		return 0, fmt.Errorf("table slot (%d, %d) out of range for resolution %d", roughness, angle, t.Resolution)
	}
	return roughness*t.Resolution + angle, nil
}

// Roughness is the roughness of bucket i, spread linearly over the range.
func (t *Table) Roughness(i int) float64 {
	f := float64(i) / float64(t.Resolution-1)
	return t.MinRoughness + (t.MaxRoughness-t.MinRoughness)*f
}

// ViewAngle is the view angle from the normal of bucket j, in radians.
func (t *Table) ViewAngle(j int) float64 {
	f := float64(j) / float64(t.Resolution-1)
	return math.Min(f*math.Pi/2, maxViewAngle)
}

// Set writes one slot.
func (t *Table) Set(roughness, angle int, data StoreData) error {
	i, err := t.index(roughness, angle)
	if err != nil {
		return err
	}
	t.records[i] = data
	t.filled[i] = true
	return nil
}

// Append writes the next slot in row-major order and returns its bucket
// coordinates.
func (t *Table) Append(data StoreData) (roughness, angle int, err error) {
	if t.next >= len(t.records) {
		return 0, 0, fmt.Errorf("table %s is full (%d records)", t.ID, len(t.records))
	}
	roughness, angle = t.next/t.Resolution, t.next%t.Resolution
	t.records[t.next] = data
	t.filled[t.next] = true
	t.next++
	return roughness, angle, nil
}

// At reads one slot. ok is false for slots never written.
func (t *Table) At(roughness, angle int) (data StoreData, ok bool, err error) {
	i, err := t.index(roughness, angle)
	if err != nil {
		return StoreData{}, false, err
	}
	return t.records[i], t.filled[i], nil
}

// Filled counts written slots.
func (t *Table) Filled() int {
	n := 0
	for _, f := range t.filled {
		if f {
			n++
		}
	}
	return n
}

func (t *Table) Complete() bool {
	return t.Filled() == len(t.records)
}

// Model reconstructs the lobe baked into a slot. Its base frame is
// identity and its matrix is already framed.
func (t *Table) Model(roughness, angle int) (Model, error) {
	data, ok, err := t.At(roughness, angle)
	if err != nil {
		return Model{}, err
	}
	if !ok {
		return Model{}, fmt.Errorf("table slot (%d, %d) is empty", roughness, angle)
	}
	m := NewModel()
	m.SetStoreData(data)
	return m, nil
}

// InitialGuess is the isotropic starting point for fitting a lobe of
// the given roughness: scale alpha on X and Y, no skew.
func InitialGuess(roughness float64) mgl64.Vec3 {
	return mgl64.Vec3{roughness, roughness, 0}
}
