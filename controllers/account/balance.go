package account

import (
	"bolao/database"
	"bolao/helpers"
	"bolao/middlewares"
	"bolao/models"

	"github.com/gofiber/fiber/v2"
)

func Balance(c *fiber.Ctx) error {
	claims, ok := middlewares.CallerClaims(c)
	if !ok {
		return helpers.JSONError(c, fiber.StatusUnauthorized, "INVALID_SESSION")
	}

	var user models.User
	if err := database.DB.First(&user, claims.UserID).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "USER_NOT_FOUND")
	}

	return helpers.JSONSuccess(c, "Balance fetched", fiber.Map{
		"user_id": user.ID,
		"balance": user.Balance,
	})
}

// Transactions returns the caller's ledger history, newest first.
func Transactions(c *fiber.Ctx) error {
	claims, ok := middlewares.CallerClaims(c)
	if !ok {
		return helpers.JSONError(c, fiber.StatusUnauthorized, "INVALID_SESSION")
	}

	var trxs []models.Transaction
	err := database.DB.
		Where("user_id = ?", claims.UserID).
		Order("created_at DESC").
		Limit(100).
		Find(&trxs).Error
	if err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, "FAILED_TO_LOAD_TRANSACTIONS")
	}

	return helpers.JSONSuccess(c, "Transactions fetched", trxs)
}
