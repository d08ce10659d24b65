package services

import (
	"time"

	"bolao/database"
	"bolao/metrics"
	"bolao/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RequestDeposit records a pending deposit. No funds move until an admin
// confirms external receipt and approves it.
func RequestDeposit(userID uint, amount decimal.Decimal, note string) (*models.Transaction, error) {
	if !amount.IsPositive() {
		return nil, failedPrecondition("deposit amount must be positive")
	}
	if note == "" {
		note = "Deposit request"
	}

	var trx models.Transaction
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		user, err := lockUser(tx, userID)
		if err != nil {
			return err
		}

		trx = models.Transaction{
			UserID:        user.ID,
			Type:          models.TrxTypeDeposit,
			Amount:        amount,
			Status:        models.TrxStatusPending,
			BalanceBefore: user.Balance,
			BalanceAfter:  user.Balance,
			Note:          note,
		}
		if err := tx.Create(&trx).Error; err != nil {
			return internal("create deposit transaction", err)
		}
		return nil
	})
	if err != nil {
		metrics.RecordFundsOp("deposit_request", "fail")
		return nil, err
	}

	metrics.RecordFundsOp("deposit_request", "success")
	return &trx, nil
}

// ApproveDeposit credits the user and completes the pending deposit. The
// pending check runs inside the transaction that flips it, so the credit
// happens at most once per transaction id.
func ApproveDeposit(adminID, trxID uint) (*models.Transaction, error) {
	return processFunds("deposit_approve", func(tx *gorm.DB) (*models.Transaction, error) {
		trx, err := lockPendingTransaction(tx, trxID, models.TrxTypeDeposit)
		if err != nil {
			return nil, err
		}
		user, err := lockUser(tx, trx.UserID)
		if err != nil {
			return nil, err
		}

		before := user.Balance
		after := before.Add(trx.Amount)
		if err := tx.Model(user).Update("balance", after).Error; err != nil {
			return nil, internal("credit deposit", err)
		}

		now := time.Now()
		if err := tx.Model(trx).Updates(map[string]any{
			"status":         models.TrxStatusCompleted,
			"balance_before": before,
			"balance_after":  after,
			"processed_at":   now,
			"processed_by":   adminID,
		}).Error; err != nil {
			return nil, internal("complete deposit", err)
		}
		return trx, nil
	})
}

// DeclineDeposit fails the pending deposit. No funds were ever reserved for a
// deposit, so the balance is untouched.
func DeclineDeposit(adminID, trxID uint) (*models.Transaction, error) {
	return processFunds("deposit_decline", func(tx *gorm.DB) (*models.Transaction, error) {
		trx, err := lockPendingTransaction(tx, trxID, models.TrxTypeDeposit)
		if err != nil {
			return nil, err
		}

		now := time.Now()
		if err := tx.Model(trx).Updates(map[string]any{
			"status":       models.TrxStatusFailed,
			"processed_at": now,
			"processed_by": adminID,
		}).Error; err != nil {
			return nil, internal("decline deposit", err)
		}
		return trx, nil
	})
}

// RequestWithdrawal debits the user immediately and records a pending
// withdrawal. Debiting upfront reserves the funds so they cannot be spent
// twice while the request waits for an admin.
func RequestWithdrawal(userID uint, amount decimal.Decimal, note string) (*models.Transaction, error) {
	if !amount.IsPositive() {
		return nil, failedPrecondition("withdrawal amount must be positive")
	}
	if note == "" {
		note = "Withdrawal request"
	}

	var trx models.Transaction
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		user, err := lockUser(tx, userID)
		if err != nil {
			return err
		}
		if user.Balance.LessThan(amount) {
			return failedPrecondition(
				"insufficient balance: have %s, requested %s",
				user.Balance.StringFixed(2), amount.StringFixed(2),
			)
		}

		before := user.Balance
		after := before.Sub(amount)
		if err := tx.Model(user).Update("balance", after).Error; err != nil {
			return internal("reserve withdrawal", err)
		}

		trx = models.Transaction{
			UserID:        user.ID,
			Type:          models.TrxTypeWithdrawal,
			Amount:        amount.Neg(),
			Status:        models.TrxStatusPending,
			BalanceBefore: before,
			BalanceAfter:  after,
			Note:          note,
		}
		if err := tx.Create(&trx).Error; err != nil {
			return internal("create withdrawal transaction", err)
		}
		return nil
	})
	if err != nil {
		metrics.RecordFundsOp("withdrawal_request", "fail")
		return nil, err
	}

	metrics.RecordFundsOp("withdrawal_request", "success")
	return &trx, nil
}

// ApproveWithdrawal completes the pending withdrawal. The funds were already
// debited at request time, so no further balance change happens here.
func ApproveWithdrawal(adminID, trxID uint) (*models.Transaction, error) {
	return processFunds("withdrawal_approve", func(tx *gorm.DB) (*models.Transaction, error) {
		trx, err := lockPendingTransaction(tx, trxID, models.TrxTypeWithdrawal)
		if err != nil {
			return nil, err
		}

		now := time.Now()
		if err := tx.Model(trx).Updates(map[string]any{
			"status":       models.TrxStatusCompleted,
			"processed_at": now,
			"processed_by": adminID,
		}).Error; err != nil {
			return nil, internal("complete withdrawal", err)
		}
		return trx, nil
	})
}

// DeclineWithdrawal returns the reserved funds and fails the transaction. The
// row's balance columns are restated to document the reversal.
func DeclineWithdrawal(adminID, trxID uint) (*models.Transaction, error) {
	return processFunds("withdrawal_decline", func(tx *gorm.DB) (*models.Transaction, error) {
		trx, err := lockPendingTransaction(tx, trxID, models.TrxTypeWithdrawal)
		if err != nil {
			return nil, err
		}
		user, err := lockUser(tx, trx.UserID)
		if err != nil {
			return nil, err
		}

		before := user.Balance
		after := before.Add(trx.Amount.Abs())
		if err := tx.Model(user).Update("balance", after).Error; err != nil {
			return nil, internal("return withdrawal funds", err)
		}

		now := time.Now()
		if err := tx.Model(trx).Updates(map[string]any{
			"status":         models.TrxStatusFailed,
			"balance_before": before,
			"balance_after":  after,
			"processed_at":   now,
			"processed_by":   adminID,
			"note":           "Withdrawal declined, funds returned",
		}).Error; err != nil {
			return nil, internal("decline withdrawal", err)
		}
		return trx, nil
	})
}

func processFunds(op string, fn func(tx *gorm.DB) (*models.Transaction, error)) (*models.Transaction, error) {
	var trx *models.Transaction
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		trx, err = fn(tx)
		return err
	})
	if err != nil {
		metrics.RecordFundsOp(op, "fail")
		return nil, err
	}

	metrics.RecordFundsOp(op, "success")
	return trx, nil
}
