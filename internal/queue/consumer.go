package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"HabitBoard/config"
	"HabitBoard/internal/repository"
	"HabitBoard/pkg/logger"
	"HabitBoard/storage/mq"
)

const waterReminderConsumerTag = "habitboard-water-worker"

// StartWaterReminderConsumer 阻塞消费喝水提醒队列
func StartWaterReminderConsumer() error {
	return mq.Consume(mq.ConsumeOptions{
		Queue:         mq.WaterReminderQueue,
		ConsumerTag:   waterReminderConsumerTag,
		PrefetchCount: 10,
		Handler:       handleWaterReminder,
	})
}

// handleWaterReminder 处理单条提醒：已达标的用户直接丢弃
func handleWaterReminder(body []byte) error {
	var msg WaterReminderMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		logger.Logger.Error("Failed to unmarshal water reminder message",
			zap.Error(err),
		)
		// 格式错误的消息重回队列没有意义
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	reminder, err := repository.GetWaterReminder(ctx, msg.UserID, msg.Date)
	if err != nil {
		return fmt.Errorf("failed to load water count: %w", err)
	}

	count := 0
	if reminder != nil {
		count = reminder.Count
	}

	if count >= config.Cfg.WaterDailyTarget {
		logger.Logger.Debug("Daily water target already met, skipping reminder",
			zap.Int64("user_id", msg.UserID),
			zap.String("date", msg.Date),
			zap.Int("count", count),
		)
		return nil
	}

	// 推送渠道接在这里，目前先落日志
	logger.Logger.Info("Water reminder delivered",
		zap.String("message_id", msg.MessageID),
		zap.Int64("user_id", msg.UserID),
		zap.String("date", msg.Date),
		zap.Int("slot", msg.Slot),
		zap.Int("count", count),
		zap.Int("target", config.Cfg.WaterDailyTarget),
	)
	return nil
}
