package history

import (
	"context"

	"github.com/Karnakarj/areahunt/internal/shared/geo"
	"github.com/Karnakarj/areahunt/internal/shared/model"
	"github.com/Karnakarj/areahunt/internal/store"
)

// Summary holds derived statistics for one walk.
type Summary struct {
	PointCount    int     `json:"point_count"`
	DistanceM     float64 `json:"distance_m"`
	DurationSec   int64   `json:"duration_sec"`
	AverageSpeedM float64 `json:"average_speed_mps"`
}

// Summarize derives walk statistics from an ordered path. Paths with
// fewer than two points have no distance or duration.
func Summarize(points []model.Coordinate) Summary {
	s := Summary{PointCount: len(points)}
	if len(points) < 2 {
		return s
	}
	s.DistanceM = geo.PathDistanceM(points)
	s.DurationSec = (points[len(points)-1].Timestamp - points[0].Timestamp) / 1000
	if s.DurationSec > 0 {
		s.AverageSpeedM = s.DistanceM / float64(s.DurationSec)
	}
	return s
}

// Service is the read side of the walk archive.
type Service struct {
	store store.Store
}

func NewService(st store.Store) *Service {
	return &Service{store: st}
}

func (s *Service) Walks(ctx context.Context) [][]model.Coordinate {
	walks := s.store.LoadHistory(ctx)
	if walks == nil {
		walks = [][]model.Coordinate{}
	}
	return walks
}

func (s *Service) Summaries(ctx context.Context) []Summary {
	walks := s.store.LoadHistory(ctx)
	summaries := make([]Summary, 0, len(walks))
	for _, walk := range walks {
		summaries = append(summaries, Summarize(walk))
	}
	return summaries
}
