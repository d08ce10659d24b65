package funds

import (
	"strconv"

	"bolao/helpers"
	"bolao/middlewares"
	"bolao/models"
	"bolao/services"

	"github.com/gofiber/fiber/v2"
)

type FundsRequest struct {
	Amount string `json:"amount"`
	Note   string `json:"note"`
}

func RequestDeposit(c *fiber.Ctx) error {
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

	trx, err := services.RequestDeposit(claims.UserID, amount, req.Note)
	if err != nil {
		return helpers.JSONFromError(c, err)
	}

	return helpers.JSONSuccess(c, "Deposit request created", fiber.Map{
		"transaction_id": trx.ID,
		"ref_id":         trx.RefID,
		"status":         trx.Status,
	})
}

func ApproveDeposit(c *fiber.Ctx) error {
	return processTransaction(c, services.ApproveDeposit, "Deposit approved")
}

func DeclineDeposit(c *fiber.Ctx) error {
	return processTransaction(c, services.DeclineDeposit, "Deposit declined")
}

// processTransaction runs one admin-gated pending-transaction transition.
func processTransaction(c *fiber.Ctx, op func(adminID, trxID uint) (*models.Transaction, error), message string) error {
	claims, ok := middlewares.CallerClaims(c)
	if !ok {
		return helpers.JSONError(c, fiber.StatusUnauthorized, "INVALID_SESSION")
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_TRANSACTION_ID")
	}

	trx, err := op(claims.UserID, uint(id))
	if err != nil {
		return helpers.JSONFromError(c, err)
	}

	return helpers.JSONSuccess(c, message, fiber.Map{
		"transaction_id": trx.ID,
		"ref_id":         trx.RefID,
		"status":         trx.Status,
	})
}
