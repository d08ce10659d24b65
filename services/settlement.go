package services

import (
	"errors"
	"time"

	"bolao/database"
	"bolao/metrics"
	"bolao/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettlementResult struct {
	PoolID         uint            `json:"pool_id"`
	WinnerCount    int             `json:"winner_count"`
	LoserCount     int             `json:"loser_count"`
	TotalStaked    decimal.Decimal `json:"total_staked"`
	PrizePool      decimal.Decimal `json:"prize_pool"`
	PrizePerWinner decimal.Decimal `json:"prize_per_winner"`
}

type settlementOutcome struct {
	Winners        []models.Wager
	Losers         []models.Wager
	TotalStaked    decimal.Decimal
	PrizePool      decimal.Decimal
	PrizePerWinner decimal.Decimal
}

// resolve computes the full monetary outcome of settling a pool against a
// final score. A wager wins only on an exact match of both coordinates.
// prizePool = initialPrize + totalStaked * prizeSharePercent; the per-winner
// share is the equal split, bankers-rounded to the cent.
func resolve(pool *models.Pool, wagers []models.Wager, scoreHome, scoreAway int) settlementOutcome {
	out := settlementOutcome{
		TotalStaked:    decimal.Zero,
		PrizePerWinner: decimal.Zero,
	}
	for _, w := range wagers {
		out.TotalStaked = out.TotalStaked.Add(w.StakeAmount)
		if w.Matches(scoreHome, scoreAway) {
			out.Winners = append(out.Winners, w)
		} else {
			out.Losers = append(out.Losers, w)
		}
	}

	out.PrizePool = pool.InitialPrize.
		Add(out.TotalStaked.Mul(pool.PrizeSharePercent)).
		RoundBank(2)
	if n := len(out.Winners); n > 0 {
		out.PrizePerWinner = out.PrizePool.
			Div(decimal.NewFromInt(int64(n))).
			RoundBank(2)
	}
	return out
}

// SettlePool records the final score, resolves every open wager of the pool
// and credits the winners, all in one atomic transaction. The pool lock plus
// the already-settled check make settlement at-most-once; the wager query runs
// under the same transaction, so a wager placed concurrently either commits
// before the lock and is settled, or fails its own open-pool check after.
func SettlePool(adminID, poolID uint, scoreHome, scoreAway int) (*SettlementResult, error) {
	if scoreHome < 0 || scoreAway < 0 {
		return nil, failedPrecondition("final score cannot be negative")
	}

	start := time.Now()
	var result SettlementResult

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var pool models.Pool
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&pool, poolID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("pool %d not found", poolID)
			}
			return internal("load pool", err)
		}
		if pool.Status == models.PoolStatusSettled {
			return invalidState("pool %d is already settled", pool.ID)
		}

		now := time.Now()
		if err := tx.Model(&pool).Updates(map[string]any{
			"status":           models.PoolStatusSettled,
			"final_score_home": scoreHome,
			"final_score_away": scoreAway,
			"settled_at":       now,
			"settled_by":       adminID,
		}).Error; err != nil {
			return internal("settle pool", err)
		}

		var wagers []models.Wager
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("pool_id = ? AND status IN ?", pool.ID, models.WagerOpenStatuses).
			Find(&wagers).Error; err != nil {
			return internal("load open wagers", err)
		}

		out := resolve(&pool, wagers, scoreHome, scoreAway)

		for i := range out.Losers {
			if err := tx.Model(&out.Losers[i]).Update("status", models.WagerStatusLost).Error; err != nil {
				return internal("mark wager lost", err)
			}
		}

		for i := range out.Winners {
			w := &out.Winners[i]

			user, err := lockUser(tx, w.UserID)
			if err != nil {
				return err
			}

			if err := tx.Model(w).Update("status", models.WagerStatusWon).Error; err != nil {
				return internal("mark wager won", err)
			}

			before := user.Balance
			after := before.Add(out.PrizePerWinner)
			if err := tx.Model(user).Update("balance", after).Error; err != nil {
				return internal("credit prize", err)
			}

			payout := models.Transaction{
				UserID:        user.ID,
				Type:          models.TrxTypePrizePayout,
				Amount:        out.PrizePerWinner,
				Status:        models.TrxStatusCompleted,
				BalanceBefore: before,
				BalanceAfter:  after,
				ProcessedAt:   &now,
				ProcessedBy:   &adminID,
				Metadata:      metaJSON(map[string]any{"pool_id": pool.ID, "wager_id": w.ID}),
				Note:          "Prize payout",
			}
			if err := tx.Create(&payout).Error; err != nil {
				return internal("create payout transaction", err)
			}
		}

		result = SettlementResult{
			PoolID:         pool.ID,
			WinnerCount:    len(out.Winners),
			LoserCount:     len(out.Losers),
			TotalStaked:    out.TotalStaked,
			PrizePool:      out.PrizePool,
			PrizePerWinner: out.PrizePerWinner,
		}
		return nil
	})
	if err != nil {
		metrics.RecordSettlement("fail", 0, start)
		return nil, err
	}

	metrics.RecordSettlement("success", result.WinnerCount, start)
	return &result, nil
}
