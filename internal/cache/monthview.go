package cache

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"HabitBoard/pkg/logger"
	"HabitBoard/storage/redis"
)

const monthViewTTL = 10 * time.Minute

// GetMonthView 读月视图缓存，未命中或反序列化失败都返回 false
func GetMonthView(ctx context.Context, userID int64, year, month int, dest interface{}) bool {
	raw, err := redis.Client().Get(ctx, monthViewKey(userID, year, month)).Bytes()
	if err != nil {
		return false
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		logger.Logger.Warn("Failed to unmarshal cached month view",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return false
	}
	return true
}

// SetMonthView 写月视图缓存，失败只记日志不影响主流程
func SetMonthView(ctx context.Context, userID int64, year, month int, view interface{}) {
	raw, err := json.Marshal(view)
	if err != nil {
		return
	}

	if err := redis.Client().Set(ctx, monthViewKey(userID, year, month), raw, monthViewTTL).Err(); err != nil {
		logger.Logger.Warn("Failed to cache month view",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
	}
}

// InvalidateMonthView 习惯或打卡记录变动后使缓存失效
func InvalidateMonthView(ctx context.Context, userID int64, year, month int) {
	if err := redis.Client().Del(ctx, monthViewKey(userID, year, month)).Err(); err != nil {
		logger.Logger.Warn("Failed to invalidate month view cache",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
	}
}
