package api

import (
	"fin-advisor/internal/api/handlers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func SetupRouter(
	adviceHandler *handlers.AdviceHandler,
	knowledgeHandler *handlers.KnowledgeHandler,
	profileHandler *handlers.ProfileHandler,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")

	advice := v1.Group("/advice")
	advice.Post("", adviceHandler.GenerateAdvice)
	advice.Get("", adviceHandler.GenerateAdviceByType)

	knowledge := v1.Group("/knowledge")
	knowledge.Post("", knowledgeHandler.AddKnowledge)
	knowledge.Get("", knowledgeHandler.ListKnowledge)
	knowledge.Put("/:id", knowledgeHandler.UpdateKnowledge)
	knowledge.Delete("/:id", knowledgeHandler.DeleteKnowledge)

	profiles := v1.Group("/profiles")
	profiles.Put("/:userId", profileHandler.UpsertProfile)

	return app
}
