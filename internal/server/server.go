package server

import (
	"context"
	"log"

	"github.com/Karnakarj/areahunt/internal/assistant"
	"github.com/Karnakarj/areahunt/internal/config"
	"github.com/Karnakarj/areahunt/internal/history"
	"github.com/Karnakarj/areahunt/internal/marker"
	"github.com/Karnakarj/areahunt/internal/shared/model"
	"github.com/Karnakarj/areahunt/internal/store"
	"github.com/Karnakarj/areahunt/internal/stream"
	"github.com/Karnakarj/areahunt/internal/track"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type Server struct {
	App      *fiber.App
	Cfg      config.Config
	Store    store.Store
	Hub      *stream.Hub
	Recorder *track.Recorder
	Fixes    *track.FixQueue
	Markers  *marker.Service
}

func NewServer(cfg config.Config, pg *pgxpool.Pool, redisClient *redis.Client) *Server {
	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	st := newStore(pg, redisClient)
	hub := stream.NewHub(redisClient)
	queue := track.NewFixQueue(cfg.FixBuffer)

	s := &Server{
		App:      app,
		Cfg:      cfg,
		Store:    st,
		Hub:      hub,
		Recorder: track.NewRecorder(cfg, st, hub, queue),
		Fixes:    queue,
		Markers:  marker.NewService(context.Background(), st, hub),
	}

	registerRoutes(s, assistant.NewService(context.Background(), cfg))
	return s
}

// newStore picks the first configured backend: Postgres, then Redis,
// then memory.
func newStore(pg *pgxpool.Pool, redisClient *redis.Client) store.Store {
	switch {
	case pg != nil:
		ps := store.NewPostgres(pg)
		if err := ps.EnsureSchema(context.Background()); err != nil {
			log.Printf("state schema init failed: %v", err)
		}
		return ps
	case redisClient != nil:
		return store.NewRedis(redisClient)
	default:
		log.Printf("no storage backend configured, state will not survive restarts")
		return store.NewMemory()
	}
}

func registerRoutes(s *Server, ai *assistant.Service) {
	s.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	track.RegisterRoutes(s.App.Group("/tracking"), s.Recorder, s.Fixes)
	history.RegisterRoutes(s.App.Group("/history"), history.NewService(s.Store))
	marker.RegisterRoutes(s.App.Group("/markers"), s.Markers)
	assistant.RegisterRoutes(s.App.Group("/assistant"), ai, func() (model.Fix, bool) {
		return s.Recorder.Location()
	})
	stream.RegisterRoutes(s.App.Group("/stream"), s.Hub)

	// destructive and irreversible: demands the explicit confirm flag
	s.App.Delete("/data", func(c *fiber.Ctx) error {
		if c.Query("confirm") != "true" {
			return fiber.NewError(fiber.StatusBadRequest, "confirm=true required to delete all data")
		}
		if s.Recorder.Tracking() {
			return fiber.NewError(fiber.StatusConflict, "stop tracking before deleting data")
		}
		if err := s.Store.Clear(c.Context()); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		s.Recorder.ClearPath()
		s.Markers.Reset()
		return c.SendStatus(fiber.StatusNoContent)
	})
}
