package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"HabitBoard/internal/model"
	"HabitBoard/storage/database"
)

// CreateTodo 创建待办
func CreateTodo(ctx context.Context, todo *model.Todo) error {
	return database.DB().WithContext(ctx).Create(todo).Error
}

// GetTodo 按 ID 查找某用户的待办，未找到返回 (nil, nil)
func GetTodo(ctx context.Context, userID, todoID int64) (*model.Todo, error) {
	var todo model.Todo
	err := database.DB().WithContext(ctx).
		Where("id = ? AND user_id = ?", todoID, userID).
		First(&todo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

// ListTodos 列出某用户全部待办，按 position 排序
func ListTodos(ctx context.Context, userID int64) ([]*model.Todo, error) {
	var todos []*model.Todo
	err := database.DB().WithContext(ctx).
		Where("user_id = ?", userID).
		Order("position ASC, created_at ASC").
		Find(&todos).Error
	return todos, err
}

// UpdateTodo 更新待办字段
func UpdateTodo(ctx context.Context, userID, todoID int64, updates map[string]interface{}) error {
	return database.DB().WithContext(ctx).
		Model(&model.Todo{}).
		Where("id = ? AND user_id = ?", todoID, userID).
		Updates(updates).Error
}

// DeleteTodo 软删除待办
func DeleteTodo(ctx context.Context, userID, todoID int64) error {
	result := database.DB().WithContext(ctx).
		Where("id = ? AND user_id = ?", todoID, userID).
		Delete(&model.Todo{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
