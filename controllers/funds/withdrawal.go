package funds

import (
	"bolao/helpers"
	"bolao/middlewares"
	"bolao/services"

	"github.com/gofiber/fiber/v2"
)

func RequestWithdrawal(c *fiber.Ctx) error {
	claims, ok := middlewares.CallerClaims(c)
	if !ok {
		return helpers.JSONError(c, fiber.StatusUnauthorized, "INVALID_SESSION")
	}

	var req FundsRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_JSON")
	}
	amount, err := helpers.ParseAmount(req.Amount)
	if err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_AMOUNT")
	}

	trx, err := services.RequestWithdrawal(claims.UserID, amount, req.Note)
	if err != nil {
		return helpers.JSONFromError(c, err)
	}

	return helpers.JSONSuccess(c, "Withdrawal request created", fiber.Map{
		"transaction_id": trx.ID,
		"ref_id":         trx.RefID,
		"status":         trx.Status,
		"balance":        trx.BalanceAfter,
	})
}

func ApproveWithdrawal(c *fiber.Ctx) error {
	return processTransaction(c, services.ApproveWithdrawal, "Withdrawal approved")
}

func DeclineWithdrawal(c *fiber.Ctx) error {
	return processTransaction(c, services.DeclineWithdrawal, "Withdrawal declined")
}
