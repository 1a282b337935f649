package robotics

import (
	"fmt"

	"go.uber.org/zap"
)

// Model names of the fleet's robot variants.
const (
	ModelCarrier = "CarrierBot-X1"
	ModelScanner = "ScannerBot-S2"
	ModelSorter  = "SorterBot-T3"
)

// CarrierRobot transports loads around the warehouse.
type CarrierRobot struct {
	base
	LoadCapacity float64 // kg
}

// NewCarrierRobot creates a carrier. The load capacity must be positive.
func NewCarrierRobot(id string, capacity float64, logger *zap.Logger) (*CarrierRobot, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("load capacity must be positive, got %.1f", capacity)
	}
	b, err := newBase(id, ModelCarrier, logger)
	if err != nil {
		return nil, err
	}
	r := &CarrierRobot{base: b, LoadCapacity: capacity}
	r.logActivity("CarrierRobot initialized", zap.Float64("capacity_kg", capacity))
	return r, nil
}

// ExecuteTask runs the assigned transport task.
func (r *CarrierRobot) ExecuteTask() error {
	return r.execute("*** CarrierRobot executing transport task")
}

// ScannerRobot scans shelves and keeps inventory records current.
type ScannerRobot struct {
	base
	Range    float64 // meters
	Accuracy float64 // percent
}

// NewScannerRobot creates a scanner. The range must be positive and the
// accuracy a percentage.
func NewScannerRobot(id string, scanRange, accuracy float64, logger *zap.Logger) (*ScannerRobot, error) {
	if scanRange <= 0 {
		return nil, fmt.Errorf("scanner range must be positive, got %.1f", scanRange)
	}
	if accuracy < 0 || accuracy > 100 {
		return nil, fmt.Errorf("scan accuracy must be between 0 and 100, got %.1f", accuracy)
	}
	b, err := newBase(id, ModelScanner, logger)
	if err != nil {
		return nil, err
	}
	r := &ScannerRobot{base: b, Range: scanRange, Accuracy: accuracy}
	r.logActivity("ScannerRobot initialized",
		zap.Float64("range_m", scanRange),
		zap.Float64("accuracy_pct", accuracy))
	return r, nil
}

// ExecuteTask runs the assigned scanning task.
func (r *ScannerRobot) ExecuteTask() error {
	return r.execute("*** ScannerRobot executing scanning and inventory task")
}

// SorterRobot sorts items into zones.
type SorterRobot struct {
	base
	Accuracy float64 // percent
	Zone     string
}

// NewSorterRobot creates a sorter starting in Zone_A. The accuracy must be
// a percentage.
func NewSorterRobot(id string, accuracy float64, logger *zap.Logger) (*SorterRobot, error) {
	if accuracy < 0 || accuracy > 100 {
		return nil, fmt.Errorf("sort accuracy must be between 0 and 100, got %.1f", accuracy)
	}
	b, err := newBase(id, ModelSorter, logger)
	if err != nil {
		return nil, err
	}
	r := &SorterRobot{base: b, Accuracy: accuracy, Zone: "Zone_A"}
	r.logActivity("SorterRobot initialized",
		zap.Float64("accuracy_pct", accuracy),
		zap.String("zone", r.Zone))
	return r, nil
}

// ExecuteTask runs the assigned sorting task.
func (r *SorterRobot) ExecuteTask() error {
	return r.execute("*** SorterRobot executing sorting and organization task")
}
