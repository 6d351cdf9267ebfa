package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/HasibAliOpu/Auto-Motive-Server/model"
	"github.com/HasibAliOpu/Auto-Motive-Server/store"
)

type ProfileController struct {
	Profiles store.ProfileStore
}

func NewProfileController(profiles store.ProfileStore) *ProfileController {
	return &ProfileController{Profiles: profiles}
}

func (pc *ProfileController) Get(c *fiber.Ctx) error {
	profile, err := pc.Profiles.Get(c.Context(), c.Params("email"))
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(profile)
}

// Upsert requires the full set of profile fields; partial updates are
// rejected as malformed.
func (pc *ProfileController) Upsert(c *fiber.Ctx) error {
	var profile model.Profile
	if err := c.BodyParser(&profile); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid payload"})
	}
	if !profile.Complete() {
		return c.Status(400).JSON(fiber.Map{"error": "incomplete profile"})
	}

	res, err := pc.Profiles.Upsert(c.Context(), c.Params("email"), profile)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(res)
}
