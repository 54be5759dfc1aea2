package service

import (
	"context"
	"strconv"

	"HabitBoard/internal/model/dto"
	"HabitBoard/internal/repository"
	"HabitBoard/pkg/errors"
)

// GetProfile 获取当前用户资料
func GetProfile(ctx context.Context, userID int64) (*dto.ProfileResponse, error) {
	user, err := repository.GetUserByPublicID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.UserNotFound
	}

	return &dto.ProfileResponse{
		ID:       strconv.FormatInt(user.PublicID, 10),
		Email:    user.Email,
		Username: user.Username,
		Role:     string(user.Role),
	}, nil
}

// UpdateProfile 更新当前用户资料
func UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	user, err := repository.GetUserByPublicID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.UserNotFound
	}

	if err := repository.UpdateUsername(ctx, user.ID, req.Username); err != nil {
		return nil, err
	}
	user.Username = req.Username

	return &dto.ProfileResponse{
		ID:       strconv.FormatInt(user.PublicID, 10),
		Email:    user.Email,
		Username: user.Username,
		Role:     string(user.Role),
	}, nil
}
