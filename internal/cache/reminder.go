package cache

import (
	"context"
	"time"

	"HabitBoard/storage/redis"
)

// 去重标记保留到次日，保证同一时段不会重复提醒
const reminderMarkTTL = 26 * time.Hour

// MarkReminderSent SETNX 打标，返回 true 表示本时段第一次提醒
func MarkReminderSent(ctx context.Context, userID int64, date string, slot int) (bool, error) {
	return redis.Client().SetNX(ctx, reminderSlotKey(userID, date, slot), 1, reminderMarkTTL).Result()
}
