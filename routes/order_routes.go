package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/HasibAliOpu/Auto-Motive-Server/controller"
)

// Order creation and deletion are open; reading and paying require a token.
func RegisterOrderRoutes(app *fiber.App, oc *controller.OrderController, token fiber.Handler) {
	app.Post("/order", oc.Create)
	app.Get("/order", token, oc.ByEmail)
	app.Patch("/order/:id", token, oc.Pay)
	app.Delete("/order/:id", oc.Delete)
}
