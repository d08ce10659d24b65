package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	TrxTypeDeposit        = "deposit"
	TrxTypeWithdrawal     = "withdrawal"
	TrxTypeWagerPlacement = "wager_placement"
	TrxTypePrizePayout    = "prize_payout"
	TrxTypeWagerRefund    = "wager_refund"
)

const (
	TrxStatusPending   = "pending"
	TrxStatusCompleted = "completed"
	TrxStatusFailed    = "failed"
)

// Transaction is the immutable audit record of one balance mutation.
// Amount is signed: negative for debits, positive for credits.
type Transaction struct {
	gorm.Model

	UserID uint   `gorm:"index" json:"user_id"`
	RefID  string `gorm:"size:36;uniqueIndex" json:"ref_id"`

	Type   string          `gorm:"size:16;index" json:"type"`
	Amount decimal.Decimal `gorm:"type:numeric(18,2)" json:"amount"`
	Status string          `gorm:"size:16;index" json:"status"`

	BalanceBefore decimal.Decimal `gorm:"type:numeric(18,2)" json:"balance_before"`
	BalanceAfter  decimal.Decimal `gorm:"type:numeric(18,2)" json:"balance_after"`

	ProcessedAt *time.Time `json:"processed_at"`
	ProcessedBy *uint      `json:"processed_by"`

	Metadata datatypes.JSON `gorm:"type:jsonb" json:"metadata"`
	Note     string         `gorm:"size:255" json:"note"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) (err error) {
	if t.RefID == "" {
		t.RefID = strings.ToLower(uuid.New().String())
	}
	return nil
}

func (t *Transaction) IsPending() bool {
	return t.Status == TrxStatusPending
}
