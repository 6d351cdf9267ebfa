package controller

import (
	"github.com/gofiber/fiber/v2"
)

// IntentCreator is the payment collaborator; the Stripe client satisfies
// it in production.
type IntentCreator interface {
	CreateIntent(price float64) (string, error)
}

type PaymentController struct {
	Intents IntentCreator
}

func NewPaymentController(intents IntentCreator) *PaymentController {
	return &PaymentController{Intents: intents}
}

func (pc *PaymentController) CreateIntent(c *fiber.Ctx) error {
	var body struct {
		Price float64 `json:"price"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid payload"})
	}
	if body.Price <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "invalid price"})
	}

	secret, err := pc.Intents.CreateIntent(body.Price)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"clientSecret": secret})
}
