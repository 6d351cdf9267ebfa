package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/HasibAliOpu/Auto-Motive-Server/controller"
)

// Profile writes are open while reads need a token; kept as deployed.
func RegisterProfileRoutes(app *fiber.App, pc *controller.ProfileController, token fiber.Handler) {
	app.Get("/profile/:email", token, pc.Get)
	app.Put("/profile/:email", pc.Upsert)
}
