package services

import (
	"errors"
	"time"

	"bolao/database"
	"bolao/metrics"
	"bolao/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PlaceWagerInput struct {
	UserID           uint
	PoolID           uint
	GuessedScoreHome int
	GuessedScoreAway int
	Comment          string
}

// PlaceWager debits the pool's stake from the user and records an open wager,
// all inside one atomic transaction. The pool row is locked first so placement
// can never interleave with a settlement of the same pool.
func PlaceWager(in PlaceWagerInput) (*models.Wager, error) {
	var wager models.Wager

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var pool models.Pool
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&pool, in.PoolID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("pool %d not found", in.PoolID)
			}
			return internal("load pool", err)
		}

		if !pool.AcceptsWagers(time.Now()) {
			return invalidState("pool %d is no longer open for wagers", pool.ID)
		}
		if !pool.StakeAmount.IsPositive() {
			return failedPrecondition("pool %d has a non-positive stake", pool.ID)
		}

		user, err := lockUser(tx, in.UserID)
		if err != nil {
			return err
		}
		if user.Balance.LessThan(pool.StakeAmount) {
			return failedPrecondition(
				"insufficient balance: have %s, stake is %s",
				user.Balance.StringFixed(2), pool.StakeAmount.StringFixed(2),
			)
		}

		before := user.Balance
		after := before.Sub(pool.StakeAmount)
		if err := tx.Model(user).Update("balance", after).Error; err != nil {
			return internal("debit balance", err)
		}

		wager = models.Wager{
			UserID:           user.ID,
			PoolID:           pool.ID,
			GuessedScoreHome: in.GuessedScoreHome,
			GuessedScoreAway: in.GuessedScoreAway,
			StakeAmount:      pool.StakeAmount,
			Status:           models.WagerStatusOpen,
			Comment:          in.Comment,
		}
		if err := tx.Create(&wager).Error; err != nil {
			return internal("create wager", err)
		}

		trx := models.Transaction{
			UserID:        user.ID,
			Type:          models.TrxTypeWagerPlacement,
			Amount:        pool.StakeAmount.Neg(),
			Status:        models.TrxStatusCompleted,
			BalanceBefore: before,
			BalanceAfter:  after,
			Metadata:      metaJSON(map[string]any{"pool_id": pool.ID, "wager_id": wager.ID}),
			Note:          "Wager placement",
		}
		if err := tx.Create(&trx).Error; err != nil {
			return internal("create placement transaction", err)
		}
		return nil
	})
	if err != nil {
		metrics.RecordWagerPlaced("fail")
		return nil, err
	}

	metrics.RecordWagerPlaced("success")
	return &wager, nil
}

// AnnulWager voids an open wager and refunds its stake. The open-status check
// runs inside the same transaction that flips it, so a wager cannot be
// refunded twice.
func AnnulWager(adminID, wagerID uint) (*models.Transaction, error) {
	var refund models.Transaction

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var wager models.Wager
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&wager, wagerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("wager %d not found", wagerID)
			}
			return internal("load wager", err)
		}
		if !wager.IsOpen() {
			return invalidState("wager %d is %s, only open wagers can be annulled", wager.ID, wager.Status)
		}

		user, err := lockUser(tx, wager.UserID)
		if err != nil {
			return err
		}

		if err := tx.Model(&wager).Update("status", models.WagerStatusVoided).Error; err != nil {
			return internal("void wager", err)
		}

		before := user.Balance
		after := before.Add(wager.StakeAmount)
		if err := tx.Model(user).Update("balance", after).Error; err != nil {
			return internal("refund balance", err)
		}

		now := time.Now()
		refund = models.Transaction{
			UserID:        user.ID,
			Type:          models.TrxTypeWagerRefund,
			Amount:        wager.StakeAmount,
			Status:        models.TrxStatusCompleted,
			BalanceBefore: before,
			BalanceAfter:  after,
			ProcessedAt:   &now,
			ProcessedBy:   &adminID,
			Metadata:      metaJSON(map[string]any{"pool_id": wager.PoolID, "wager_id": wager.ID}),
			Note:          "Wager annulled by admin",
		}
		if err := tx.Create(&refund).Error; err != nil {
			return internal("create refund transaction", err)
		}
		return nil
	})
	if err != nil {
		metrics.RecordAnnulment("fail")
		return nil, err
	}

	metrics.RecordAnnulment("success")
	return &refund, nil
}
