package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/HasibAliOpu/Auto-Motive-Server/controller"
)

func RegisterUserRoutes(app *fiber.App, uc *controller.UserController, token, admin fiber.Handler) {
	app.Put("/user/admin/:email", token, admin, uc.MakeAdmin)
	app.Put("/user/:email", uc.Upsert)
	app.Get("/user", token, uc.List)
	app.Get("/admin/:email", uc.IsAdmin)
}
