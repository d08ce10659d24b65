package database

import (
	"context"
	"fmt"
	"log"

	"bolao/config"
	"bolao/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect(cfg *config.Config) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db
	log.Println("✅ Connected to database")

	if cfg.DBAutoMigrate {
		log.Println("🟡 Starting auto-migration...")

		if err := DB.AutoMigrate(
			&models.User{},
			&models.Pool{},
			&models.Wager{},
			&models.Transaction{},
		); err != nil {
			log.Fatal("❌ Failed to auto-migrate database:", err)
		}

		if err := MigrateLegacyWagerStatuses(); err != nil {
			log.Fatal("❌ Failed to migrate legacy wager statuses:", err)
		}

		log.Println("✅ Auto migration completed")
	}
}

// MigrateLegacyWagerStatuses rewrites the historical "pending" wager status to
// the canonical "open". Reads still match both values (models.WagerOpenStatuses)
// until every environment has run this once.
func MigrateLegacyWagerStatuses() error {
	res := DB.Model(&models.Wager{}).
		Where("status = ?", models.WagerStatusLegacyPending).
		Update("status", models.WagerStatusOpen)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		log.Printf("🟡 Migrated %d legacy wager statuses\n", res.RowsAffected)
	}
	return nil
}

// SeedAdmin creates the bootstrap admin account when ADMIN_EMAIL and
// ADMIN_PASSWORD are set and no such user exists yet.
func SeedAdmin(cfg *config.Config) {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return
	}

	var existing models.User
	if err := DB.Where("email = ?", cfg.AdminEmail).First(&existing).Error; err == nil {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("❌ Failed to hash admin password:", err)
	}

	admin := models.User{
		Name:         "Administrator",
		Email:        cfg.AdminEmail,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		Balance:      decimal.Zero,
		IsActive:     true,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Fatal("❌ Failed to seed admin user:", err)
	}
	log.Println("✅ Seeded admin user", cfg.AdminEmail)
}

// Ping checks store reachability for health reporting.
func Ping(ctx context.Context) error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
