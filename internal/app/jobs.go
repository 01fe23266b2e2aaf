package app

import (
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/compazz/stockbridge/internal/domain"
)

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

func (a *Application) initJob() {
	loc := time.Local
	a.sched = cron.New(cron.WithParser(cronParser), cron.WithLocation(loc))

	// nightly import-log retention sweep
	_, err := a.sched.AddFunc("0 30 3 * * *", a.purgeImportLogs)
	if err != nil {
		zap.S().Errorf("failed to register import-log purge job: %v", err)
	}

	a.sched.Start()
}

// purgeImportLogs drops audit rows past the configured retention window.
func (a *Application) purgeImportLogs() {
	days := a.appConfig.Import.LogRetentionDays
	if days <= 0 {
		return
	}
	cutoff := time.Now().AddDate(0, 0, -days)
	result := a.gormDB.Where("created_at < ?", cutoff).Delete(&domain.ImportLog{})
	if result.Error != nil {
		zap.L().Error("failed to purge import logs", zap.Error(result.Error))
		return
	}
	if result.RowsAffected > 0 {
		zap.L().Info("purged expired import logs",
			zap.Int64("rows", result.RowsAffected),
			zap.Time("cutoff", cutoff))
	}
}
