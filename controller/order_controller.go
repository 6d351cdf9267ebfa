package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/HasibAliOpu/Auto-Motive-Server/kafka"
	"github.com/HasibAliOpu/Auto-Motive-Server/model"
	"github.com/HasibAliOpu/Auto-Motive-Server/store"
)

type OrderController struct {
	Orders   store.OrderStore
	Payments store.PaymentStore
	Events   *kafka.Producer
}

func NewOrderController(orders store.OrderStore, payments store.PaymentStore, events *kafka.Producer) *OrderController {
	return &OrderController{Orders: orders, Payments: payments, Events: events}
}

func (oc *OrderController) Create(c *fiber.Ctx) error {
	var order model.Order
	if err := c.BodyParser(&order); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid payload"})
	}

	res, err := oc.Orders.Insert(c.Context(), order)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	oc.Events.PublishOrderCreated(map[string]interface{}{
		"orderId": res.InsertedID,
		"email":   order.Email,
	})
	return c.Status(201).JSON(res)
}

// ByEmail only serves the orders of the account the credential was
// issued to; any other email in the query is forbidden.
func (oc *OrderController) ByEmail(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" || email != c.Locals("user_email") {
		return c.Status(403).JSON(fiber.Map{"error": "forbidden access"})
	}

	orders, err := oc.Orders.ByEmail(c.Context(), email)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(orders)
}

// Pay marks the order paid/pending with the supplied transaction id and
// persists the full payment body as its own record. The two writes are
// not atomic; a payment record can exist for an order left unpaid.
func (oc *OrderController) Pay(c *fiber.Ctx) error {
	var body struct {
		Payment map[string]interface{} `json:"payment"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid payload"})
	}

	transactionID, _ := body.Payment["transactionId"].(string)
	if transactionID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "missing transactionId"})
	}

	id := c.Params("id")
	res, err := oc.Orders.MarkPaid(c.Context(), id, transactionID)
	if err != nil {
		return storeError(c, err)
	}

	payRes, err := oc.Payments.Insert(c.Context(), model.Payment{
		OrderID:       id,
		TransactionID: transactionID,
		Body:          body.Payment,
	})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	oc.Events.PublishOrderPaid(map[string]interface{}{
		"orderId":       id,
		"transactionId": transactionID,
	})
	return c.JSON(fiber.Map{
		"result":    res,
		"paymentId": payRes.InsertedID,
	})
}

func (oc *OrderController) Delete(c *fiber.Ctx) error {
	if err := oc.Orders.Delete(c.Context(), c.Params("id")); err != nil {
		return storeError(c, err)
	}
	return c.Status(200).Send(nil)
}
