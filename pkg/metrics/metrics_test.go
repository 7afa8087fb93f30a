package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestNewManagerWithCustomRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewManager(
		WithPrometheusRegistry(reg),
		WithNamespace("test"),
		WithSubsystem("fetcher"),
	)
	if m == nil {
		t.Fatal("manager is nil")
	}

	// All metrics should be registered and gatherable.
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}
	if len(families) == 0 {
		t.Error("expected registered metric families")
	}
}

func TestGlobalHelpers(t *testing.T) {
	// Helpers operate on the package-level manager; they must not panic.
	RecordEntryFetched()
	RecordEntryFetchFailure()
	RecordEntryCacheHit()
	RecordEntryCacheMiss()
	RecordFetchLatency(12.5)
	RecordEntryNormalized()
	RecordNormalizationFailure()
	RecordMeasurements("R1", 42)
	RecordStructureDownload()
	RecordStructureCacheHit()
	RecordStructureFailure()

	if GetRegistry() == nil {
		t.Error("custom registry should not be nil")
	}
}
