package account

import (
	"strings"

	"bolao/auth"
	"bolao/config"
	"bolao/database"
	"bolao/helpers"
	"bolao/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_JSON")
	}
	if req.Email == "" || req.Password == "" {
		return helpers.JSONError(c, fiber.StatusBadRequest, "EMAIL_AND_PASSWORD_REQUIRED")
	}

	var user models.User
	err := database.DB.
		Where("email = ? AND is_active = true", strings.ToLower(strings.TrimSpace(req.Email))).
		First(&user).Error
	if err != nil {
		return helpers.JSONError(c, fiber.StatusUnauthorized, "INVALID_CREDENTIALS")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return helpers.JSONError(c, fiber.StatusUnauthorized, "INVALID_CREDENTIALS")
	}

	cfg := config.Get()
	token, err := auth.GenerateToken(cfg.JWTSecret, cfg.TokenTTL, user.ID, user.Role)
	if err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, "FAILED_TO_ISSUE_TOKEN")
	}

	return helpers.JSONSuccess(c, "Login successful", fiber.Map{
		"token":      token,
		"expires_in": int(cfg.TokenTTL.Seconds()),
		"role":       user.Role,
	})
}
