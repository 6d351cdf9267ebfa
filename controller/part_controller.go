package controller

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"github.com/HasibAliOpu/Auto-Motive-Server/cache"
	"github.com/HasibAliOpu/Auto-Motive-Server/kafka"
	"github.com/HasibAliOpu/Auto-Motive-Server/model"
	"github.com/HasibAliOpu/Auto-Motive-Server/store"
)

type PartController struct {
	Parts  store.PartStore
	Cache  *cache.Cache
	Events *kafka.Producer
}

func NewPartController(parts store.PartStore, c *cache.Cache, events *kafka.Producer) *PartController {
	return &PartController{Parts: parts, Cache: c, Events: events}
}

func (pc *PartController) List(c *fiber.Ctx) error {
	if data, ok := pc.Cache.GetParts(c.Context()); ok {
		c.Set("Content-Type", "application/json")
		return c.Send(data)
	}

	parts, err := pc.Parts.All(c.Context())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	if data, err := json.Marshal(parts); err == nil {
		pc.Cache.SetParts(c.Context(), data)
	}
	return c.JSON(parts)
}

func (pc *PartController) Get(c *fiber.Ctx) error {
	part, err := pc.Parts.Get(c.Context(), c.Params("id"))
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(part)
}

func (pc *PartController) Create(c *fiber.Ctx) error {
	var part model.Part
	if err := c.BodyParser(&part); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid payload"})
	}

	res, err := pc.Parts.Insert(c.Context(), part)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	pc.Cache.InvalidateParts(c.Context())
	pc.Events.PublishPartCreated(map[string]interface{}{
		"partId": res.InsertedID,
		"name":   part.Name,
	})

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"message": "Part added successfully",
	})
}

func (pc *PartController) UpdateQuantity(c *fiber.Ctx) error {
	var body struct {
		AvailableQuantity int `json:"availableQuantity"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid payload"})
	}

	res, err := pc.Parts.SetAvailableQuantity(c.Context(), c.Params("id"), body.AvailableQuantity)
	if err != nil {
		return storeError(c, err)
	}

	pc.Cache.InvalidateParts(c.Context())
	return c.JSON(res)
}

func (pc *PartController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := pc.Parts.Delete(c.Context(), id); err != nil {
		return storeError(c, err)
	}

	pc.Cache.InvalidateParts(c.Context())
	pc.Events.PublishPartDeleted(map[string]interface{}{"partId": id})
	return c.Status(200).Send(nil)
}
