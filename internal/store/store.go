package store

import (
	"context"
	"encoding/json"
	"log"

	"github.com/Karnakarj/areahunt/internal/shared/model"
)

// The three persisted records. Each key maps to one JSON document.
const (
	keyActivePath = "areahunt:active_path"
	keyHistory    = "areahunt:history"
	keyMarkers    = "areahunt:markers"
)

var recordKeys = []string{keyActivePath, keyHistory, keyMarkers}

// Store persists the application state as three independent records.
// Load methods never fail the caller: a missing, unreadable, or corrupt
// record yields the empty default. Save is synchronous; by the time it
// returns the value is durable on the configured backend. Clearing the
// persisted active path is expressed as saving the empty sequence.
type Store interface {
	SaveActivePath(ctx context.Context, path []model.Coordinate) error
	LoadActivePath(ctx context.Context) []model.Coordinate
	SaveHistory(ctx context.Context, history [][]model.Coordinate) error
	LoadHistory(ctx context.Context) [][]model.Coordinate
	SaveMarkers(ctx context.Context, markers []model.Marker) error
	LoadMarkers(ctx context.Context) []model.Marker
	Clear(ctx context.Context) error
}

// kv is the raw byte-level backend behind a Store.
type kv interface {
	set(ctx context.Context, key string, value []byte) error
	get(ctx context.Context, key string) ([]byte, error)
	del(ctx context.Context, keys ...string) error
}

// records implements Store's JSON codec over any kv backend.
type records struct {
	kv kv
}

func (r records) SaveActivePath(ctx context.Context, path []model.Coordinate) error {
	return r.save(ctx, keyActivePath, path)
}

func (r records) LoadActivePath(ctx context.Context) []model.Coordinate {
	data := r.fetch(ctx, keyActivePath)
	if data == nil {
		return nil
	}
	var path []model.Coordinate
	if err := json.Unmarshal(data, &path); err != nil {
		log.Printf("store: corrupt active path record, using empty default: %v", err)
		return nil
	}
	return path
}

func (r records) SaveHistory(ctx context.Context, history [][]model.Coordinate) error {
	return r.save(ctx, keyHistory, history)
}

func (r records) LoadHistory(ctx context.Context) [][]model.Coordinate {
	data := r.fetch(ctx, keyHistory)
	if data == nil {
		return nil
	}
	var history [][]model.Coordinate
	if err := json.Unmarshal(data, &history); err != nil {
		log.Printf("store: corrupt history record, using empty default: %v", err)
		return nil
	}
	return history
}

func (r records) SaveMarkers(ctx context.Context, markers []model.Marker) error {
	return r.save(ctx, keyMarkers, markers)
}

func (r records) LoadMarkers(ctx context.Context) []model.Marker {
	data := r.fetch(ctx, keyMarkers)
	if data == nil {
		return nil
	}
	var markers []model.Marker
	if err := json.Unmarshal(data, &markers); err != nil {
		log.Printf("store: corrupt markers record, using empty default: %v", err)
		return nil
	}
	return markers
}

func (r records) Clear(ctx context.Context) error {
	return r.kv.del(ctx, recordKeys...)
}

func (r records) save(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return r.kv.set(ctx, key, data)
}

// fetch returns the raw record or nil; backend errors are logged, never
// propagated.
func (r records) fetch(ctx context.Context, key string) []byte {
	data, err := r.kv.get(ctx, key)
	if err != nil {
		log.Printf("store: load %s: %v", key, err)
		return nil
	}
	return data
}
