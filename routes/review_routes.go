package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/HasibAliOpu/Auto-Motive-Server/controller"
)

func RegisterReviewRoutes(app *fiber.App, rc *controller.ReviewController, token fiber.Handler) {
	app.Get("/review", rc.List)
	app.Post("/review", token, rc.Create)
}
