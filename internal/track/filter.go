package track

import (
	"github.com/Karnakarj/areahunt/internal/config"
	"github.com/Karnakarj/areahunt/internal/shared/geo"
	"github.com/Karnakarj/areahunt/internal/shared/model"
)

// Filter decides which raw fixes become path points. Both thresholds are
// tunable; the defaults match consumer GPS error in an urban walk.
type Filter struct {
	AccuracyLimitM float64
	AccuracyFactor float64
	MinMoveDeg     float64
}

func NewFilter(cfg config.Config) Filter {
	f := Filter{
		AccuracyLimitM: cfg.AccuracyLimitM,
		AccuracyFactor: cfg.AccuracyFactor,
		MinMoveDeg:     cfg.MinMoveDeg,
	}
	if f.AccuracyFactor <= 0 {
		f.AccuracyFactor = 1
	}
	return f
}

// Accurate reports whether the fix passes the accuracy gate. The limit is
// AccuracyLimitM scaled by AccuracyFactor; a fix exactly at the limit
// passes.
func (f Filter) Accurate(fix model.Fix) bool {
	return fix.Accuracy <= f.AccuracyLimitM*f.AccuracyFactor
}

// Moved reports whether the fix is real movement away from the last
// recorded point rather than jitter. Planar degree distance, strict
// less-than rejects: a fix exactly at MinMoveDeg counts as movement.
func (f Filter) Moved(last model.Coordinate, fix model.Fix) bool {
	return geo.PlanarDeg(last.Lat, last.Lng, fix.Lat, fix.Lng) >= f.MinMoveDeg
}

// Accept runs both gates against the current path. The first fix into an
// empty path has no previous point to diff against and only needs to pass
// the accuracy gate.
func (f Filter) Accept(path []model.Coordinate, fix model.Fix) bool {
	if !f.Accurate(fix) {
		return false
	}
	if len(path) == 0 {
		return true
	}
	return f.Moved(path[len(path)-1], fix)
}
