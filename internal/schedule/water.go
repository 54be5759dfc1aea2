package schedule

import (
	"context"
	"time"

	"go.uber.org/zap"

	"HabitBoard/config"
	"HabitBoard/internal/cache"
	"HabitBoard/internal/queue"
	"HabitBoard/internal/repository"
	"HabitBoard/pkg/logger"
	"HabitBoard/utils"
)

// RunWaterScheduler 周期性扫描用户并投递喝水提醒，ctx 取消后退出
func RunWaterScheduler(ctx context.Context) {
	interval := time.Duration(config.Cfg.WaterReminderIntervalMinutes) * time.Minute

	logger.Logger.Info("Water reminder scheduler started",
		zap.Duration("interval", interval),
		zap.Int("start_hour", config.Cfg.WaterReminderStartHour),
		zap.Int("end_hour", config.Cfg.WaterReminderEndHour),
	)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// 启动时先跑一轮，避免等满一个间隔
	tick(ctx, time.Now())

	for {
		select {
		case <-ctx.Done():
			logger.Logger.Info("Water reminder scheduler stopped")
			return
		case now := <-ticker.C:
			tick(ctx, now)
		}
	}
}

// tick 单轮扫描：窗口外直接跳过，窗口内给每个用户投递本时段的提醒
func tick(ctx context.Context, now time.Time) {
	hour := now.Hour()
	if hour < config.Cfg.WaterReminderStartHour || hour >= config.Cfg.WaterReminderEndHour {
		return
	}

	date := now.Format(utils.DateLayout)
	slot := currentSlot(now)

	userIDs, err := repository.ListUserIDs(ctx)
	if err != nil {
		logger.Logger.Error("Failed to list users for water reminders",
			zap.Error(err),
		)
		return
	}

	published := 0
	for _, uid := range userIDs {
		first, err := cache.MarkReminderSent(ctx, uid, date, slot)
		if err != nil {
			logger.Logger.Warn("Failed to mark reminder slot",
				zap.Int64("user_id", uid),
				zap.Error(err),
			)
			continue
		}
		if !first {
			continue
		}

		if err := queue.PublishWaterReminder(uid, date, slot); err != nil {
			logger.Logger.Error("Failed to publish water reminder",
				zap.Int64("user_id", uid),
				zap.Error(err),
			)
			continue
		}
		published++
	}

	if published > 0 {
		logger.Logger.Info("Water reminder round finished",
			zap.String("date", date),
			zap.Int("slot", slot),
			zap.Int("published", published),
			zap.Int("users", len(userIDs)),
		)
	}
}

// currentSlot 把当天时间映射成第几个提醒时段
func currentSlot(now time.Time) int {
	minutes := now.Hour()*60 + now.Minute()
	startMinutes := config.Cfg.WaterReminderStartHour * 60
	if minutes < startMinutes {
		return 0
	}
	return (minutes - startMinutes) / config.Cfg.WaterReminderIntervalMinutes
}
