package geo

import (
	"math"
	"testing"

	"github.com/Karnakarj/areahunt/internal/shared/model"
)

func TestHaversineKm(t *testing.T) {
	// Jakarta (-6.2, 106.816) to Bandung (-6.9175, 107.6191) ~ 115-120 km
	d := HaversineKm(-6.2, 106.816, -6.9175, 107.6191)
	if d < 100 || d > 140 {
		t.Fatalf("unexpected distance: %v", d)
	}
}

func TestHaversineZero(t *testing.T) {
	if d := HaversineKm(1.5, 2.5, 1.5, 2.5); d != 0 {
		t.Fatalf("expected zero distance, got %v", d)
	}
}

func TestPlanarDeg(t *testing.T) {
	// 3-4-5 triangle in degree space
	d := PlanarDeg(0, 0, 0.00003, 0.00004)
	if math.Abs(d-0.00005) > 1e-12 {
		t.Fatalf("unexpected planar distance: %v", d)
	}
	if PlanarDeg(1, 1, 1, 1) != 0 {
		t.Fatalf("expected zero planar distance")
	}
}

func TestPathDistanceM(t *testing.T) {
	if d := PathDistanceM(nil); d != 0 {
		t.Fatalf("expected zero for empty path, got %v", d)
	}
	if d := PathDistanceM([]model.Coordinate{{Lat: 0, Lng: 0}}); d != 0 {
		t.Fatalf("expected zero for single point, got %v", d)
	}

	// one degree of latitude is ~111 km
	path := []model.Coordinate{
		{Lat: 0, Lng: 0, Timestamp: 0},
		{Lat: 1, Lng: 0, Timestamp: 1},
	}
	d := PathDistanceM(path)
	if d < 110000 || d > 112500 {
		t.Fatalf("unexpected path distance: %v", d)
	}
}
