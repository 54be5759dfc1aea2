package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"HabitBoard/internal/model"
	"HabitBoard/storage/database"
)

// GetWaterReminder 查某天的饮水计数，未找到返回 (nil, nil)
func GetWaterReminder(ctx context.Context, userID int64, date string) (*model.WaterReminder, error) {
	var reminder model.WaterReminder
	err := database.DB().WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&reminder).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &reminder, nil
}

// UpsertWaterReminder 按 (user_id, date) 直接写入计数
func UpsertWaterReminder(ctx context.Context, reminder *model.WaterReminder) error {
	return database.DB().WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"count", "updated_at"}),
		}).
		Create(reminder).Error
}

// IncrementWaterCount 原子 +1，行不存在时先建一行
func IncrementWaterCount(ctx context.Context, userID int64, date string) (*model.WaterReminder, error) {
	db := database.DB().WithContext(ctx)
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"count": gorm.Expr("water_reminders.count + 1")}),
	}).Create(&model.WaterReminder{UserID: userID, Date: date, Count: 1}).Error
	if err != nil {
		return nil, err
	}
	return GetWaterReminder(ctx, userID, date)
}
