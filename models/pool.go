package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	PoolStatusOpen    = "open"
	PoolStatusClosed  = "closed"
	PoolStatusSettled = "settled"
)

// Pool is one wagering event tied to a single match outcome.
type Pool struct {
	gorm.Model

	HomeTeam string `gorm:"size:64" json:"home_team"`
	AwayTeam string `gorm:"size:64" json:"away_team"`

	MatchStartTime time.Time `json:"match_start_time"`
	ClosingTime    time.Time `gorm:"index" json:"closing_time"`

	StakeAmount       decimal.Decimal `gorm:"type:numeric(18,2)" json:"stake_amount"`
	InitialPrize      decimal.Decimal `gorm:"type:numeric(18,2);default:0" json:"initial_prize"`
	PrizeSharePercent decimal.Decimal `gorm:"type:numeric(5,4)" json:"prize_share_percent"`

	Status         string     `gorm:"size:16;index;default:open" json:"status"`
	FinalScoreHome *int       `json:"final_score_home"`
	FinalScoreAway *int       `json:"final_score_away"`
	SettledAt      *time.Time `json:"settled_at"`
	SettledBy      *uint      `json:"settled_by"`

	Wagers []Wager `gorm:"foreignKey:PoolID"`
}

// AcceptsWagers reports whether a wager may still be placed. ClosingTime is
// authoritative; the closed status flip done by the sweep job is bookkeeping.
func (p *Pool) AcceptsWagers(now time.Time) bool {
	return p.Status == PoolStatusOpen && now.Before(p.ClosingTime)
}
