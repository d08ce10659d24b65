package pool

import (
	"strconv"

	"bolao/helpers"
	"bolao/middlewares"
	"bolao/services"

	"github.com/gofiber/fiber/v2"
)

type SettlePoolRequest struct {
	FinalScoreHome *int `json:"final_score_home" validate:"required,gte=0,lte=99"`
	FinalScoreAway *int `json:"final_score_away" validate:"required,gte=0,lte=99"`
}

func Settle(c *fiber.Ctx) error {
	claims, ok := middlewares.CallerClaims(c)
	if !ok {
		return helpers.JSONError(c, fiber.StatusUnauthorized, "INVALID_SESSION")
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_POOL_ID")
	}

	var req SettlePoolRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_JSON")
	}
	if err := validate.Struct(&req); err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_FINAL_SCORE")
	}

	result, err := services.SettlePool(claims.UserID, uint(id), *req.FinalScoreHome, *req.FinalScoreAway)
	if err != nil {
		return helpers.JSONFromError(c, err)
	}

	return helpers.JSONSuccess(c, "Pool settled successfully", result)
}
