package marker

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/Karnakarj/areahunt/internal/shared/model"
	"github.com/Karnakarj/areahunt/internal/store"
	"github.com/Karnakarj/areahunt/internal/stream"

	"github.com/google/uuid"
)

var ErrInvalidType = errors.New("invalid marker type")

// Service creates and stores point annotations. There is no update or
// delete; markers only go away through the clear-all operation.
type Service struct {
	store store.Store
	hub   *stream.Hub

	mu      sync.Mutex
	markers []model.Marker
}

func NewService(ctx context.Context, st store.Store, hub *stream.Hub) *Service {
	return &Service{
		store:   st,
		hub:     hub,
		markers: st.LoadMarkers(ctx),
	}
}

// Create stamps a new marker, appends it to the collection, and persists
// the whole collection. The in-memory collection only advances once the
// write succeeded.
func (s *Service) Create(ctx context.Context, lat, lng float64, note, category string) (model.Marker, error) {
	if !model.ValidMarkerType(category) {
		return model.Marker{}, ErrInvalidType
	}

	m := model.Marker{
		ID:        uuid.NewString(),
		Lat:       lat,
		Lng:       lng,
		Note:      note,
		Type:      category,
		Timestamp: time.Now().UnixMilli(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	updated := make([]model.Marker, len(s.markers), len(s.markers)+1)
	copy(updated, s.markers)
	updated = append(updated, m)

	if err := s.store.SaveMarkers(ctx, updated); err != nil {
		return model.Marker{}, err
	}
	s.markers = updated

	s.broadcast(markerEvent{Type: "marker", Marker: &m})
	return m, nil
}

func (s *Service) Markers() []model.Marker {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Marker, len(s.markers))
	copy(out, s.markers)
	return out
}

// Reset drops the in-memory collection after a clear-all; the persisted
// record is already gone.
func (s *Service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.markers = nil
	s.broadcast(markerEvent{Type: "cleared"})
}

type markerEvent struct {
	Type   string        `json:"type"`
	Marker *model.Marker `json:"marker,omitempty"`
}

func (s *Service) broadcast(v any) {
	if s.hub == nil {
		return
	}
	payload, err := json.Marshal(v)
	if err != nil {
		return
	}
	s.hub.Broadcast(stream.TopicMarkers, payload)
}
