package tables

import (
	"github.com/ebarrera/manifiesto/model"
)

// Detector is the interface for table detection algorithms.
type Detector interface {
	// Detect finds tables on a page
	Detect(page *model.Page) ([]*model.Table, error)

	// Name returns the detector name
	Name() string

	// Configure sets detector parameters
	Configure(config Config) error
}

// Config holds detector configuration.
type Config struct {
	// Minimum rows for a valid table
	MinRows int

	// Minimum columns for a valid table
	MinCols int

	// Minimum confidence threshold (0-1)
	MinConfidence float64

	// Tolerance for clustering token X positions into columns (page units)
	AlignmentTolerance float64

	// Tolerance for grouping tokens into rows (page units)
	RowTolerance float64

	// Vertical gap that splits consecutive rows into separate tables
	BlockGap float64
}

// DefaultConfig returns default configuration.
func DefaultConfig() Config {
	return Config{
		MinRows:            2,
		MinCols:            3,
		MinConfidence:      0.5,
		AlignmentTolerance: 6.0,
		RowTolerance:       3.0,
		BlockGap:           50.0,
	}
}

// DetectorRegistry holds registered detectors.
type DetectorRegistry struct {
	detectors map[string]Detector
}

// NewRegistry creates a new detector registry.
func NewRegistry() *DetectorRegistry {
	return &DetectorRegistry{
		detectors: make(map[string]Detector),
	}
}

// Register registers a detector.
func (r *DetectorRegistry) Register(detector Detector) {
	r.detectors[detector.Name()] = detector
}

// Get retrieves a detector by name.
func (r *DetectorRegistry) Get(name string) Detector {
	return r.detectors[name]
}

// List returns all registered detector names.
func (r *DetectorRegistry) List() []string {
	names := make([]string, 0, len(r.detectors))
	for name := range r.detectors {
		names = append(names, name)
	}
	return names
}

var globalRegistry = NewRegistry()

// RegisterDetector registers a detector globally.
func RegisterDetector(detector Detector) {
	globalRegistry.Register(detector)
}

// GetDetector retrieves a globally registered detector by name.
func GetDetector(name string) Detector {
	return globalRegistry.Get(name)
}

// ListDetectors returns all registered detector names.
func ListDetectors() []string {
	return globalRegistry.List()
}

func init() {
	RegisterDetector(NewAlignmentDetector())
}
