package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/HasibAliOpu/Auto-Motive-Server/controller"
)

// Guard placement mirrors the deployed behavior exactly: only the single
// part lookup needs a token; the mutation endpoints are open.
func RegisterPartRoutes(app *fiber.App, pc *controller.PartController, token fiber.Handler) {
	p := app.Group("/parts")

	p.Get("/", pc.List)
	p.Get("/:id", token, pc.Get)
	p.Post("/", pc.Create)
	p.Put("/:id", pc.UpdateQuantity)
	p.Delete("/:id", pc.Delete)
}
