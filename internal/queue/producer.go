package queue

import (
	"strconv"
	"time"

	"go.uber.org/zap"

	"HabitBoard/pkg/logger"
	"HabitBoard/pkg/snowflake"
	"HabitBoard/storage/mq"
)

// PublishWaterReminder 向提醒队列投递一条喝水提醒
func PublishWaterReminder(userID int64, date string, slot int) error {
	msgID, err := snowflake.NextID()
	if err != nil {
		return err
	}

	msg := WaterReminderMessage{
		MessageID: strconv.FormatInt(msgID, 10),
		UserID:    userID,
		Date:      date,
		Slot:      slot,
		SentAt:    time.Now().Unix(),
	}

	if err := mq.PublishMessage(mq.ReminderExchange, mq.WaterReminderRoutingKey, msg); err != nil {
		return err
	}

	logger.Logger.Debug("Published water reminder",
		zap.String("message_id", msg.MessageID),
		zap.Int64("user_id", userID),
		zap.String("date", date),
		zap.Int("slot", slot),
	)
	return nil
}
