// Package stats provides a unified interface for collecting metrics.
package stats

// Metric names used throughout the library.
const (
	// Engine metrics.
	MetricGenerations   = "gobbler_generations_total"
	MetricLostFixed     = "gobbler_lost_positions_total"
	MetricWonFixed      = "gobbler_won_positions_total"
	MetricUnfixed       = "gobbler_unfixed_positions"
	MetricGeneration    = "gobbler_generation"
	MetricGenerationSec = "gobbler_generation_seconds"

	// Snapshot metrics.
	MetricSnapshotsStored = "gobbler_snapshots_stored_total"
	MetricSnapshotErrors  = "gobbler_snapshot_errors_total"

	// Inspector metrics.
	MetricInspections    = "gobbler_inspections_total"
	MetricInspectionHits = "gobbler_inspection_cache_hits_total"
)

// Collector defines the interface for collecting metrics.
type Collector interface {
	// IncCounter increments a counter metric by delta.
	IncCounter(name string, delta int64)

	// SetGauge sets a gauge metric to value.
	SetGauge(name string, value int64)

	// ObserveHistogram records a value in a histogram metric.
	ObserveHistogram(name string, value float64)
}
