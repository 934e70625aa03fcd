package track

import (
	"errors"
	"log"
	"time"

	"github.com/Karnakarj/areahunt/internal/history"
	"github.com/Karnakarj/areahunt/internal/shared/model"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, rec *Recorder, queue *FixQueue) {
	r.Post("/start", func(c *fiber.Ctx) error {
		if err := rec.Start(c.Context()); err != nil {
			switch {
			case errors.Is(err, ErrTracking):
				return fiber.NewError(fiber.StatusConflict, err.Error())
			case errors.Is(err, ErrNoSource), errors.Is(err, ErrWatchActive):
				return fiber.NewError(fiber.StatusServiceUnavailable, err.Error())
			default:
				return fiber.NewError(fiber.StatusInternalServerError, err.Error())
			}
		}
		return c.JSON(rec.Status())
	})

	r.Post("/stop", func(c *fiber.Ctx) error {
		if err := rec.Stop(c.Context()); err != nil {
			if errors.Is(err, ErrNotTracking) {
				return fiber.NewError(fiber.StatusConflict, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(rec.Status())
	})

	r.Post("/fixes", func(c *fiber.Ctx) error {
		var fix model.Fix
		if err := c.BodyParser(&fix); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if fix.Timestamp == 0 {
			fix.Timestamp = time.Now().UnixMilli()
		}
		if err := queue.Push(fix); err != nil {
			if errors.Is(err, ErrNotWatching) {
				return fiber.NewError(fiber.StatusConflict, "tracking not active")
			}
			// a full backlog drops the fix; arrival must not block
			log.Printf("track: dropped fix: %v", err)
		}
		return c.SendStatus(fiber.StatusAccepted)
	})

	r.Get("/status", func(c *fiber.Ctx) error {
		return c.JSON(rec.Status())
	})

	r.Get("/path", func(c *fiber.Ctx) error {
		return c.JSON(rec.Path())
	})

	r.Get("/summary", func(c *fiber.Ctx) error {
		return c.JSON(history.Summarize(rec.Path()))
	})
}
