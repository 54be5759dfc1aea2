package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"HabitBoard/internal/model"
	"HabitBoard/storage/database"
)

// CreateHabit 创建习惯
func CreateHabit(ctx context.Context, habit *model.Habit) error {
	return database.DB().WithContext(ctx).Create(habit).Error
}

// GetHabit 按 ID 查找某用户的习惯，未找到返回 (nil, nil)
func GetHabit(ctx context.Context, userID, habitID int64) (*model.Habit, error) {
	var habit model.Habit
	err := database.DB().WithContext(ctx).
		Where("id = ? AND user_id = ?", habitID, userID).
		First(&habit).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &habit, nil
}

// ListHabitsByMonth 列出某用户某月的习惯，优先级高在前
func ListHabitsByMonth(ctx context.Context, userID int64, month, year int) ([]*model.Habit, error) {
	var habits []*model.Habit
	err := database.DB().WithContext(ctx).
		Where("user_id = ? AND month = ? AND year = ?", userID, month, year).
		Order("priority DESC, created_at ASC").
		Find(&habits).Error
	return habits, err
}

// UpdateHabit 更新习惯字段
func UpdateHabit(ctx context.Context, userID, habitID int64, updates map[string]interface{}) error {
	return database.DB().WithContext(ctx).
		Model(&model.Habit{}).
		Where("id = ? AND user_id = ?", habitID, userID).
		Updates(updates).Error
}

// DeleteHabit 软删除习惯及其打卡记录
func DeleteHabit(ctx context.Context, userID, habitID int64) error {
	return database.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND user_id = ?", habitID, userID).Delete(&model.Habit{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("habit_id = ?", habitID).Delete(&model.HabitLog{}).Error
	})
}
