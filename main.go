package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/HasibAliOpu/Auto-Motive-Server/cache"
	"github.com/HasibAliOpu/Auto-Motive-Server/config"
	"github.com/HasibAliOpu/Auto-Motive-Server/controller"
	"github.com/HasibAliOpu/Auto-Motive-Server/db"
	"github.com/HasibAliOpu/Auto-Motive-Server/kafka"
	"github.com/HasibAliOpu/Auto-Motive-Server/middleware"
	"github.com/HasibAliOpu/Auto-Motive-Server/payment"
	"github.com/HasibAliOpu/Auto-Motive-Server/routes"
	"github.com/HasibAliOpu/Auto-Motive-Server/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config:", err)
	}

	client := db.Connect(cfg.MongoURI)
	defer db.Disconnect(client)

	stores := store.NewStores(client.Database(cfg.MongoDB))
	partsCache := cache.Connect(cfg.RedisAddr)
	events := kafka.NewProducer(cfg.KafkaBroker)
	defer events.Close()

	stripeClient := payment.NewStripeClient(cfg.StripeSecretKey)

	token := middleware.TokenRequired(cfg.JWTSecret)
	admin := middleware.AdminRequired(stores.Users)

	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Automotive Server is Running")
	})

	routes.RegisterPartRoutes(app, controller.NewPartController(stores.Parts, partsCache, events), token)
	routes.RegisterOrderRoutes(app, controller.NewOrderController(stores.Orders, stores.Payments, events), token)
	routes.RegisterUserRoutes(app, controller.NewUserController(stores.Users, cfg.JWTSecret, cfg.TokenTTL), token, admin)
	routes.RegisterReviewRoutes(app, controller.NewReviewController(stores.Reviews), token)
	routes.RegisterProfileRoutes(app, controller.NewProfileController(stores.Profiles), token)
	routes.RegisterPaymentRoutes(app, controller.NewPaymentController(stripeClient), token)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("shutting down")
		_ = app.Shutdown()
	}()

	log.Println("Automotive app listening on Port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
