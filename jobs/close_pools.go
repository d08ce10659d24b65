package jobs

import (
	"time"

	"bolao/database"
	"bolao/logger"
	"bolao/models"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// StartPoolScheduler flips open pools past their closing time to closed once a
// minute. Placement re-checks ClosingTime itself, so this sweep only keeps the
// listed status honest.
func StartPoolScheduler() *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("* * * * *", closeExpiredPools)
	if err != nil {
		logger.Error("failed to register pool-closing job", zap.Error(err))
		return c
	}

	c.Start()
	return c
}

func closeExpiredPools() {
	res := database.DB.Model(&models.Pool{}).
		Where("status = ? AND closing_time <= ?", models.PoolStatusOpen, time.Now()).
		Update("status", models.PoolStatusClosed)
	if res.Error != nil {
		logger.Error("pool-closing sweep failed", zap.Error(res.Error))
		return
	}
	if res.RowsAffected > 0 {
		logger.Info("closed pools past closing time", zap.Int64("count", res.RowsAffected))
	}
}
