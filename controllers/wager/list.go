package wager

import (
	"bolao/database"
	"bolao/helpers"
	"bolao/middlewares"
	"bolao/models"

	"github.com/gofiber/fiber/v2"
)

// ListMine returns the caller's wagers, newest first.
func ListMine(c *fiber.Ctx) error {
	claims, ok := middlewares.CallerClaims(c)
	if !ok {
		return helpers.JSONError(c, fiber.StatusUnauthorized, "INVALID_SESSION")
	}

	var wagers []models.Wager
	err := database.DB.
		Where("user_id = ?", claims.UserID).
		Order("created_at DESC").
		Limit(100).
		Find(&wagers).Error
	if err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, "FAILED_TO_LOAD_WAGERS")
	}

	return helpers.JSONSuccess(c, "Wagers fetched", wagers)
}
