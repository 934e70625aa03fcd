package assistant

import (
	"github.com/Karnakarj/areahunt/internal/shared/model"

	"github.com/gofiber/fiber/v2"
)

// LocateFunc reports the last known fix, if any. The recorder provides
// it; the bridge itself has no location state.
type LocateFunc func() (model.Fix, bool)

func RegisterRoutes(r fiber.Router, svc *Service, locate LocateFunc) {
	r.Post("/ask", func(c *fiber.Ctx) error {
		var req struct {
			Query string `json:"query"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if req.Query == "" {
			return fiber.NewError(fiber.StatusBadRequest, "query required")
		}

		var loc *model.Coordinate
		if fix, ok := locate(); ok {
			coord := fix.Coordinate()
			loc = &coord
		}
		return c.JSON(svc.Ask(c.Context(), req.Query, loc))
	})
}
