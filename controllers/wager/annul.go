package wager

import (
	"strconv"

	"bolao/helpers"
	"bolao/middlewares"
	"bolao/services"

	"github.com/gofiber/fiber/v2"
)

func Annul(c *fiber.Ctx) error {
	claims, ok := middlewares.CallerClaims(c)
	if !ok {
		return helpers.JSONError(c, fiber.StatusUnauthorized, "INVALID_SESSION")
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_WAGER_ID")
	}

	refund, err := services.AnnulWager(claims.UserID, uint(id))
	if err != nil {
		return helpers.JSONFromError(c, err)
	}

	return helpers.JSONSuccess(c, "Wager annulled successfully", fiber.Map{
		"refund_ref_id": refund.RefID,
		"amount":        refund.Amount,
	})
}
