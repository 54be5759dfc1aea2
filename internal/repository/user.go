package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"HabitBoard/internal/model"
	"HabitBoard/storage/database"
)

// CreateUser 创建用户
func CreateUser(ctx context.Context, user *model.User) error {
	return database.DB().WithContext(ctx).Create(user).Error
}

// GetUserByEmail 按邮箱查找用户，未找到返回 (nil, nil)
func GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := database.DB().WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByPublicID 按对外 ID 查找用户，未找到返回 (nil, nil)
func GetUserByPublicID(ctx context.Context, publicID int64) (*model.User, error) {
	var user model.User
	err := database.DB().WithContext(ctx).Where("public_id = ?", publicID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUsername 更新用户名
func UpdateUsername(ctx context.Context, userID int64, username string) error {
	return database.DB().WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", userID).
		Update("username", username).Error
}

// ListUserIDs 拉取全部用户对外 ID，调度器扫描用
func ListUserIDs(ctx context.Context) ([]int64, error) {
	var ids []int64
	err := database.DB().WithContext(ctx).
		Model(&model.User{}).
		Pluck("public_id", &ids).Error
	return ids, err
}
