package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	WagerStatusOpen   = "open"
	WagerStatusWon    = "won"
	WagerStatusLost   = "lost"
	WagerStatusVoided = "voided"

	// WagerStatusLegacyPending predates WagerStatusOpen and means the same
	// thing. database.MigrateLegacyWagerStatuses rewrites it; reads keep
	// matching both until every environment has run the migration.
	WagerStatusLegacyPending = "pending"
)

// WagerOpenStatuses is the status set an unresolved wager may carry.
var WagerOpenStatuses = []string{WagerStatusOpen, WagerStatusLegacyPending}

// Wager is one user's guessed final score plus its stake. StakeAmount is
// copied from the pool at placement time and never follows later pool edits.
type Wager struct {
	gorm.Model

	UserID uint `gorm:"index" json:"user_id"`
	PoolID uint `gorm:"index" json:"pool_id"`

	GuessedScoreHome int `json:"guessed_score_home"`
	GuessedScoreAway int `json:"guessed_score_away"`

	StakeAmount decimal.Decimal `gorm:"type:numeric(18,2)" json:"stake_amount"`
	Status      string          `gorm:"size:16;index;default:open" json:"status"`
	Comment     string          `gorm:"size:255" json:"comment"`
}

func (w *Wager) IsOpen() bool {
	return w.Status == WagerStatusOpen || w.Status == WagerStatusLegacyPending
}

// Matches reports whether the wager guessed the exact final score.
func (w *Wager) Matches(scoreHome, scoreAway int) bool {
	return w.GuessedScoreHome == scoreHome && w.GuessedScoreAway == scoreAway
}
