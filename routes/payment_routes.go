package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/HasibAliOpu/Auto-Motive-Server/controller"
)

func RegisterPaymentRoutes(app *fiber.App, pc *controller.PaymentController, token fiber.Handler) {
	app.Post("/create-payment-intent", token, pc.CreateIntent)
}
