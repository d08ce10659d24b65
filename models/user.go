package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	gorm.Model

	Name         string          `gorm:"size:64" json:"name"`
	Email        string          `gorm:"uniqueIndex;size:128" json:"email"`
	PasswordHash string          `gorm:"size:128" json:"-"`
	Role         string          `gorm:"size:16;default:user" json:"role"`
	Balance      decimal.Decimal `gorm:"type:numeric(18,2);default:0" json:"balance"`
	IsActive     bool            `gorm:"default:true" json:"is_active"`

	Wagers       []Wager       `gorm:"foreignKey:UserID"`
	Transactions []Transaction `gorm:"foreignKey:UserID"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
