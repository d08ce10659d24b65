package funds

import (
	"bolao/database"
	"bolao/helpers"
	"bolao/models"

	"github.com/gofiber/fiber/v2"
)

// ListPending returns pending deposits and withdrawals for the admin queue,
// oldest first.
func ListPending(c *fiber.Ctx) error {
	q := database.DB.
		Where("status = ?", models.TrxStatusPending).
		Order("created_at ASC").
		Limit(200)
	if trxType := c.Query("type"); trxType != "" {
		q = q.Where("type = ?", trxType)
	}

	var trxs []models.Transaction
	if err := q.Find(&trxs).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, "FAILED_TO_LOAD_TRANSACTIONS")
	}

	return helpers.JSONSuccess(c, "Pending transactions fetched", trxs)
}
