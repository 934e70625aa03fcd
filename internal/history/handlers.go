package history

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(r fiber.Router, svc *Service) {
	r.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(svc.Walks(c.Context()))
	})

	r.Get("/summaries", func(c *fiber.Ctx) error {
		return c.JSON(svc.Summaries(c.Context()))
	})
}
