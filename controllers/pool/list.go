package pool

import (
	"strconv"

	"bolao/database"
	"bolao/helpers"
	"bolao/models"

	"github.com/gofiber/fiber/v2"
)

func List(c *fiber.Ctx) error {
	q := database.DB.Order("match_start_time DESC").Limit(100)
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var pools []models.Pool
	if err := q.Find(&pools).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, "FAILED_TO_LOAD_POOLS")
	}

	return helpers.JSONSuccess(c, "Pools fetched", pools)
}

func Detail(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_POOL_ID")
	}

	var pool models.Pool
	if err := database.DB.First(&pool, uint(id)).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "POOL_NOT_FOUND")
	}

	var wagerCount int64
	database.DB.Model(&models.Wager{}).Where("pool_id = ?", pool.ID).Count(&wagerCount)

	return helpers.JSONSuccess(c, "Pool fetched", fiber.Map{
		"pool":        pool,
		"wager_count": wagerCount,
	})
}
