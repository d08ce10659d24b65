package pool

import (
	"time"

	"bolao/database"
	"bolao/helpers"
	"bolao/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

type CreatePoolRequest struct {
	HomeTeam          string    `json:"home_team" validate:"required,max=64"`
	AwayTeam          string    `json:"away_team" validate:"required,max=64"`
	MatchStartTime    time.Time `json:"match_start_time" validate:"required"`
	ClosingTime       time.Time `json:"closing_time"`
	StakeAmount       string    `json:"stake_amount" validate:"required"`
	InitialPrize      string    `json:"initial_prize"`
	PrizeSharePercent string    `json:"prize_share_percent"`
}

func Create(c *fiber.Ctx) error {
	var req CreatePoolRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_JSON")
	}
	if err := validate.Struct(&req); err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_POOL_FIELDS")
	}

	stake, err := helpers.ParseAmount(req.StakeAmount)
	if err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_STAKE_AMOUNT")
	}

	initialPrize := decimal.Zero
	if req.InitialPrize != "" {
		initialPrize, err = helpers.ParseAmount(req.InitialPrize)
		if err != nil {
			return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_INITIAL_PRIZE")
		}
	}

	// Default: 90% of the collected stakes go to the prize pool.
	share := decimal.NewFromFloat(0.9)
	if req.PrizeSharePercent != "" {
		share, err = helpers.ParseShare(req.PrizeSharePercent)
		if err != nil {
			return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_PRIZE_SHARE")
		}
	}

	closing := req.ClosingTime
	if closing.IsZero() {
		closing = req.MatchStartTime
	}
	if !closing.After(time.Now()) {
		return helpers.JSONError(c, fiber.StatusBadRequest, "CLOSING_TIME_MUST_BE_IN_THE_FUTURE")
	}
	if closing.After(req.MatchStartTime) {
		return helpers.JSONError(c, fiber.StatusBadRequest, "CLOSING_TIME_AFTER_MATCH_START")
	}

	pool := models.Pool{
		HomeTeam:          req.HomeTeam,
		AwayTeam:          req.AwayTeam,
		MatchStartTime:    req.MatchStartTime,
		ClosingTime:       closing,
		StakeAmount:       stake,
		InitialPrize:      initialPrize,
		PrizeSharePercent: share,
		Status:            models.PoolStatusOpen,
	}
	if err := database.DB.Create(&pool).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusInternalServerError, "FAILED_TO_CREATE_POOL")
	}

	return helpers.JSONSuccess(c, "Pool created successfully", pool)
}
