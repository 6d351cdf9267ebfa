package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/HasibAliOpu/Auto-Motive-Server/auth"
	"github.com/HasibAliOpu/Auto-Motive-Server/model"
	"github.com/HasibAliOpu/Auto-Motive-Server/store"
)

type UserController struct {
	Users     store.UserStore
	JWTSecret string
	TokenTTL  time.Duration
}

func NewUserController(users store.UserStore, jwtSecret string, tokenTTL time.Duration) *UserController {
	return &UserController{Users: users, JWTSecret: jwtSecret, TokenTTL: tokenTTL}
}

// Upsert serves both first-time registration and login: the account is
// created or merged by email, and a fresh credential is issued either way.
func (uc *UserController) Upsert(c *fiber.Ctx) error {
	email := c.Params("email")

	var user model.User
	if err := c.BodyParser(&user); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid payload"})
	}

	// The role field is never writable here; promotion only happens
	// through the admin-gated route.
	user.Role = ""

	res, err := uc.Users.Upsert(c.Context(), email, user)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	token, err := auth.GenerateToken(email, []byte(uc.JWTSecret), uc.TokenTTL)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"result": res,
		"token":  token,
	})
}

func (uc *UserController) List(c *fiber.Ctx) error {
	users, err := uc.Users.All(c.Context())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(users)
}

func (uc *UserController) MakeAdmin(c *fiber.Ctx) error {
	res, err := uc.Users.MakeAdmin(c.Context(), c.Params("email"))
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(res)
}

// IsAdmin is a public role probe; an unknown email is simply not admin.
func (uc *UserController) IsAdmin(c *fiber.Ctx) error {
	user, err := uc.Users.Get(c.Context(), c.Params("email"))
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"admin": user.IsAdmin()})
}
