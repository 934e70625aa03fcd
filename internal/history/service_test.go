package history

import (
	"context"
	"testing"

	"github.com/Karnakarj/areahunt/internal/shared/model"
	"github.com/Karnakarj/areahunt/internal/store"
)

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.PointCount != 0 || s.DistanceM != 0 || s.DurationSec != 0 {
		t.Fatalf("unexpected summary: %+v", s)
	}
}

func TestSummarizeSinglePoint(t *testing.T) {
	s := Summarize([]model.Coordinate{{Lat: 1, Lng: 2, Timestamp: 1000}})
	if s.PointCount != 1 || s.DistanceM != 0 {
		t.Fatalf("unexpected summary: %+v", s)
	}
}

func TestSummarizeWalk(t *testing.T) {
	// one degree of latitude in 1000 seconds
	walk := []model.Coordinate{
		{Lat: 0, Lng: 0, Timestamp: 0},
		{Lat: 1, Lng: 0, Timestamp: 1000_000},
	}
	s := Summarize(walk)
	if s.PointCount != 2 {
		t.Fatalf("unexpected point count: %d", s.PointCount)
	}
	if s.DistanceM < 110000 || s.DistanceM > 112500 {
		t.Fatalf("unexpected distance: %v", s.DistanceM)
	}
	if s.DurationSec != 1000 {
		t.Fatalf("unexpected duration: %d", s.DurationSec)
	}
	wantSpeed := s.DistanceM / 1000
	if s.AverageSpeedM != wantSpeed {
		t.Fatalf("unexpected speed: %v", s.AverageSpeedM)
	}
}

func TestServiceWalks(t *testing.T) {
	st := store.NewMemory()
	ctx := context.Background()
	svc := NewService(st)

	if walks := svc.Walks(ctx); walks == nil || len(walks) != 0 {
		t.Fatalf("expected empty non-nil walks, got %v", walks)
	}

	history := [][]model.Coordinate{
		{{Lat: 0, Lng: 0, Timestamp: 0}, {Lat: 0, Lng: 0.001, Timestamp: 60_000}},
	}
	if err := st.SaveHistory(ctx, history); err != nil {
		t.Fatalf("save history: %v", err)
	}

	walks := svc.Walks(ctx)
	if len(walks) != 1 || len(walks[0]) != 2 {
		t.Fatalf("unexpected walks: %v", walks)
	}

	summaries := svc.Summaries(ctx)
	if len(summaries) != 1 || summaries[0].PointCount != 2 {
		t.Fatalf("unexpected summaries: %v", summaries)
	}
	if summaries[0].DurationSec != 60 {
		t.Fatalf("unexpected duration: %d", summaries[0].DurationSec)
	}
}
