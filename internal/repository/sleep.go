package repository

import (
	"context"

	"gorm.io/gorm/clause"

	"HabitBoard/internal/model"
	"HabitBoard/storage/database"
)

// UpsertSleepLog 按 (user_id, date) upsert 睡眠记录
func UpsertSleepLog(ctx context.Context, log *model.SleepLog) error {
	return database.DB().WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"sleep_time", "wake_time", "duration", "quality", "notes", "updated_at"}),
		}).
		Create(log).Error
}

// ListSleepLogs 按日期区间列出睡眠记录，日期升序
func ListSleepLogs(ctx context.Context, userID int64, startDate, endDate string) ([]*model.SleepLog, error) {
	var logs []*model.SleepLog
	err := database.DB().WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, startDate, endDate).
		Order("date ASC").
		Find(&logs).Error
	return logs, err
}

// DeleteSleepLog 删除某天的睡眠记录
func DeleteSleepLog(ctx context.Context, userID int64, date string) error {
	return database.DB().WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		Delete(&model.SleepLog{}).Error
}
