package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"HabitBoard/internal/model"
	"HabitBoard/storage/database"
)

// CreateGoal 创建目标
func CreateGoal(ctx context.Context, goal *model.Goal) error {
	return database.DB().WithContext(ctx).Create(goal).Error
}

// GetGoal 按 ID 查找某用户的目标，未找到返回 (nil, nil)
func GetGoal(ctx context.Context, userID, goalID int64) (*model.Goal, error) {
	var goal model.Goal
	err := database.DB().WithContext(ctx).
		Where("id = ? AND user_id = ?", goalID, userID).
		First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

// ListGoals 列出某用户全部目标，未完成在前
func ListGoals(ctx context.Context, userID int64) ([]*model.Goal, error) {
	var goals []*model.Goal
	err := database.DB().WithContext(ctx).
		Where("user_id = ?", userID).
		Order("completed ASC, created_at ASC").
		Find(&goals).Error
	return goals, err
}

// UpdateGoal 更新目标字段
func UpdateGoal(ctx context.Context, userID, goalID int64, updates map[string]interface{}) error {
	return database.DB().WithContext(ctx).
		Model(&model.Goal{}).
		Where("id = ? AND user_id = ?", goalID, userID).
		Updates(updates).Error
}

// DeleteGoal 软删除目标
func DeleteGoal(ctx context.Context, userID, goalID int64) error {
	result := database.DB().WithContext(ctx).
		Where("id = ? AND user_id = ?", goalID, userID).
		Delete(&model.Goal{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
