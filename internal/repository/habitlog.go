package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"HabitBoard/internal/model"
	"HabitBoard/storage/database"
)

// UpsertHabitLog 写入某习惯某天的状态，冲突时覆盖
// 唯一索引 (habit_id, date) 保证并发写时后写生效
func UpsertHabitLog(ctx context.Context, log *model.HabitLog) error {
	return database.DB().WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "habit_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
		}).
		Create(log).Error
}

// GetHabitLog 查某习惯某天的记录，未找到返回 (nil, nil)
func GetHabitLog(ctx context.Context, habitID int64, date string) (*model.HabitLog, error) {
	var log model.HabitLog
	err := database.DB().WithContext(ctx).
		Where("habit_id = ? AND date = ?", habitID, date).
		First(&log).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &log, nil
}

// ListHabitLogs 批量拉取多个习惯在某月的打卡记录
func ListHabitLogs(ctx context.Context, habitIDs []int64, startDate, endDate string) ([]*model.HabitLog, error) {
	if len(habitIDs) == 0 {
		return nil, nil
	}
	var logs []*model.HabitLog
	err := database.DB().WithContext(ctx).
		Where("habit_id IN ? AND date >= ? AND date <= ?", habitIDs, startDate, endDate).
		Find(&logs).Error
	return logs, err
}

// DeleteHabitLog 删除某天的记录，等价于把状态置回 empty
func DeleteHabitLog(ctx context.Context, habitID int64, date string) error {
	return database.DB().WithContext(ctx).
		Where("habit_id = ? AND date = ?", habitID, date).
		Delete(&model.HabitLog{}).Error
}
