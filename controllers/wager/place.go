package wager

import (
	"bolao/helpers"
	"bolao/middlewares"
	"bolao/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type PlaceWagerRequest struct {
	PoolID           uint   `json:"pool_id" validate:"required"`
	GuessedScoreHome *int   `json:"guessed_score_home" validate:"required,gte=0,lte=99"`
	GuessedScoreAway *int   `json:"guessed_score_away" validate:"required,gte=0,lte=99"`
	Comment          string `json:"comment" validate:"max=255"`
}

func Place(c *fiber.Ctx) error {
	claims, ok := middlewares.CallerClaims(c)
	if !ok {
		return helpers.JSONError(c, fiber.StatusUnauthorized, "INVALID_SESSION")
	}

	var req PlaceWagerRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_JSON")
	}
	if err := validate.Struct(&req); err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_WAGER_FIELDS")
	}

	w, err := services.PlaceWager(services.PlaceWagerInput{
		UserID:           claims.UserID,
		PoolID:           req.PoolID,
		GuessedScoreHome: *req.GuessedScoreHome,
		GuessedScoreAway: *req.GuessedScoreAway,
		Comment:          req.Comment,
	})
	if err != nil {
		return helpers.JSONFromError(c, err)
	}

	return helpers.JSONSuccess(c, "Wager placed successfully", fiber.Map{
		"wager_id":     w.ID,
		"pool_id":      w.PoolID,
		"stake_amount": w.StakeAmount,
	})
}
