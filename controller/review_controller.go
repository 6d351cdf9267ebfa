package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/HasibAliOpu/Auto-Motive-Server/model"
	"github.com/HasibAliOpu/Auto-Motive-Server/store"
)

type ReviewController struct {
	Reviews store.ReviewStore
}

func NewReviewController(reviews store.ReviewStore) *ReviewController {
	return &ReviewController{Reviews: reviews}
}

func (rc *ReviewController) List(c *fiber.Ctx) error {
	reviews, err := rc.Reviews.All(c.Context())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(reviews)
}

func (rc *ReviewController) Create(c *fiber.Ctx) error {
	var review model.Review
	if err := c.BodyParser(&review); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid payload"})
	}

	res, err := rc.Reviews.Insert(c.Context(), review)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(res)
}
