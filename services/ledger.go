package services

import (
	"encoding/json"
	"errors"

	"bolao/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// lockUser loads a user row FOR UPDATE. Every balance mutation goes through
// this lock so concurrent operations on the same user serialize at the store.
func lockUser(tx *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("user %d not found", id)
		}
		return nil, internal("load user", err)
	}
	return &user, nil
}

// lockPendingTransaction loads a ledger transaction FOR UPDATE and checks the
// pending/type preconditions shared by every approval and decline.
func lockPendingTransaction(tx *gorm.DB, id uint, wantType string) (*models.Transaction, error) {
	var trx models.Transaction
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&trx, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("transaction %d not found", id)
		}
		return nil, internal("load transaction", err)
	}
	if trx.Type != wantType {
		return nil, invalidState("transaction %d is not a %s", id, wantType)
	}
	if !trx.IsPending() {
		return nil, invalidState("transaction %d was already processed", id)
	}
	return &trx, nil
}

func metaJSON(kv map[string]any) datatypes.JSON {
	b, _ := json.Marshal(kv)
	return datatypes.JSON(b)
}
