package marker

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service) {
	r.Post("/", func(c *fiber.Ctx) error {
		var req struct {
			Lat  float64 `json:"lat"`
			Lng  float64 `json:"lng"`
			Note string  `json:"note"`
			Type string  `json:"type"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		m, err := svc.Create(c.Context(), req.Lat, req.Lng, req.Note, req.Type)
		if err != nil {
			if errors.Is(err, ErrInvalidType) {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(m)
	})

	r.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(svc.Markers())
	})
}
