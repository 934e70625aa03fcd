package track

import (
	"testing"

	"github.com/Karnakarj/areahunt/internal/config"
	"github.com/Karnakarj/areahunt/internal/shared/model"
)

func testFilter() Filter {
	return NewFilter(config.Config{
		AccuracyLimitM: 30,
		AccuracyFactor: 2,
		MinMoveDeg:     0.00005,
	})
}

// runFilter replays a fix sequence through the filter the way the
// recorder does, returning the resulting path.
func runFilter(f Filter, fixes []model.Fix) []model.Coordinate {
	var path []model.Coordinate
	for _, fix := range fixes {
		if f.Accept(path, fix) {
			path = append(path, fix.Coordinate())
		}
	}
	return path
}

func TestFilterInaccurateFixesNeverRecorded(t *testing.T) {
	f := testFilter()
	fixes := []model.Fix{
		{Lat: 0, Lng: 0, Accuracy: 61, Timestamp: 0},
		{Lat: 0.5, Lng: 0.5, Accuracy: 100, Timestamp: 1},
		{Lat: 1, Lng: 1, Accuracy: 1000, Timestamp: 2},
	}
	if path := runFilter(f, fixes); len(path) != 0 {
		t.Fatalf("expected empty path, got %d points", len(path))
	}
}

func TestFilterAccuracyBoundary(t *testing.T) {
	f := testFilter()
	// limit is 30*2: exactly at the limit passes, just above is rejected
	if !f.Accurate(model.Fix{Accuracy: 60}) {
		t.Fatalf("fix at accuracy limit should pass")
	}
	if f.Accurate(model.Fix{Accuracy: 60.01}) {
		t.Fatalf("fix above accuracy limit should be rejected")
	}
}

func TestFilterFirstFixAlwaysAccepted(t *testing.T) {
	f := testFilter()
	if !f.Accept(nil, model.Fix{Lat: -6.2, Lng: 106.8, Accuracy: 10}) {
		t.Fatalf("first accurate fix should be accepted unconditionally")
	}
}

func TestFilterJitterCollapsesToFirstPoint(t *testing.T) {
	f := testFilter()
	// every consecutive pair is within the jitter threshold
	fixes := []model.Fix{
		{Lat: 0, Lng: 0, Accuracy: 10, Timestamp: 0},
		{Lat: 0, Lng: 0.00001, Accuracy: 10, Timestamp: 1},
		{Lat: 0.00001, Lng: 0, Accuracy: 10, Timestamp: 2},
		{Lat: 0.00002, Lng: 0.00002, Accuracy: 10, Timestamp: 3},
	}
	path := runFilter(f, fixes)
	if len(path) != 1 {
		t.Fatalf("expected path of length 1, got %d", len(path))
	}
	if path[0].Timestamp != 0 {
		t.Fatalf("expected only the first fix to survive")
	}
}

func TestFilterRealMovementAppendsExactlyOne(t *testing.T) {
	f := testFilter()
	path := []model.Coordinate{{Lat: 0, Lng: 0, Timestamp: 0}}
	fix := model.Fix{Lat: 0, Lng: 0.0001, Accuracy: 10, Timestamp: 1}
	if !f.Accept(path, fix) {
		t.Fatalf("fix beyond jitter threshold should be accepted")
	}
}

func TestFilterJitterBoundary(t *testing.T) {
	f := testFilter()
	last := model.Coordinate{Lat: 0, Lng: 0}
	// strictly below the threshold is jitter, exactly at it is movement
	if f.Moved(last, model.Fix{Lat: 0, Lng: 0.000049}) {
		t.Fatalf("distance below threshold should be jitter")
	}
	if !f.Moved(last, model.Fix{Lat: 0, Lng: 0.00005}) {
		t.Fatalf("distance at threshold should count as movement")
	}
}

func TestFilterScenario(t *testing.T) {
	f := NewFilter(config.Config{
		AccuracyLimitM: 30,
		AccuracyFactor: 1,
		MinMoveDeg:     0.00004,
	})
	fixes := []model.Fix{
		{Lat: 0, Lng: 0, Accuracy: 10, Timestamp: 0},
		{Lat: 0, Lng: 0.0001, Accuracy: 10, Timestamp: 1},
		{Lat: 0, Lng: 0.00012, Accuracy: 10, Timestamp: 2}, // 0.00002 from the last point: jitter
	}
	path := runFilter(f, fixes)
	if len(path) != 2 {
		t.Fatalf("expected 2 points, got %d", len(path))
	}
	if path[0].Lng != 0 || path[0].Timestamp != 0 {
		t.Fatalf("unexpected first point: %+v", path[0])
	}
	if path[1].Lng != 0.0001 || path[1].Timestamp != 1 {
		t.Fatalf("unexpected second point: %+v", path[1])
	}
}

func TestFilterAccuracyGateBeatsJitterGate(t *testing.T) {
	f := testFilter()
	path := []model.Coordinate{{Lat: 0, Lng: 0, Timestamp: 0}}
	// far away but inaccurate: still rejected
	if f.Accept(path, model.Fix{Lat: 1, Lng: 1, Accuracy: 500, Timestamp: 1}) {
		t.Fatalf("inaccurate fix should be rejected regardless of distance")
	}
}

func TestFilterZeroFactorDefaultsToOne(t *testing.T) {
	f := NewFilter(config.Config{AccuracyLimitM: 30})
	if !f.Accurate(model.Fix{Accuracy: 30}) {
		t.Fatalf("fix at base limit should pass with default factor")
	}
	if f.Accurate(model.Fix{Accuracy: 31}) {
		t.Fatalf("fix above base limit should be rejected with default factor")
	}
}
