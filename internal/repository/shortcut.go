package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"HabitBoard/internal/model"
	"HabitBoard/storage/database"
)

// CreateShortcut 创建快捷方式
func CreateShortcut(ctx context.Context, shortcut *model.Shortcut) error {
	return database.DB().WithContext(ctx).Create(shortcut).Error
}

// GetShortcut 按 ID 查找某用户的快捷方式，未找到返回 (nil, nil)
func GetShortcut(ctx context.Context, userID, shortcutID int64) (*model.Shortcut, error) {
	var shortcut model.Shortcut
	err := database.DB().WithContext(ctx).
		Where("id = ? AND user_id = ?", shortcutID, userID).
		First(&shortcut).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &shortcut, nil
}

// ListShortcuts 列出某用户全部快捷方式，按分类和位置排序
func ListShortcuts(ctx context.Context, userID int64) ([]*model.Shortcut, error) {
	var shortcuts []*model.Shortcut
	err := database.DB().WithContext(ctx).
		Where("user_id = ?", userID).
		Order("category ASC, position ASC, created_at ASC").
		Find(&shortcuts).Error
	return shortcuts, err
}

// UpdateShortcut 更新快捷方式字段
func UpdateShortcut(ctx context.Context, userID, shortcutID int64, updates map[string]interface{}) error {
	return database.DB().WithContext(ctx).
		Model(&model.Shortcut{}).
		Where("id = ? AND user_id = ?", shortcutID, userID).
		Updates(updates).Error
}

// DeleteShortcut 软删除快捷方式
func DeleteShortcut(ctx context.Context, userID, shortcutID int64) error {
	result := database.DB().WithContext(ctx).
		Where("id = ? AND user_id = ?", shortcutID, userID).
		Delete(&model.Shortcut{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
