package service

import (
	"context"
	"strconv"

	"HabitBoard/internal/model"
	"HabitBoard/internal/model/dto"
	"HabitBoard/internal/repository"
	"HabitBoard/pkg/errors"
	"HabitBoard/pkg/snowflake"
	"HabitBoard/pkg/token"
	"HabitBoard/utils"
)

// Register 注册新用户并直接登录
func Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error) {
	existing, err := repository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.EmailAlreadyRegistered
	}

	publicID, err := snowflake.NextID()
	if err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		PublicID:     publicID,
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: hash,
		Role:         model.UserRoleUser,
	}
	if err := repository.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return issueTokens(user)
}

// Login 邮箱密码登录
func Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := repository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.CheckPassword(req.Password, user.PasswordHash) {
		return nil, errors.InvalidCredentials
	}

	return issueTokens(user)
}

// RefreshToken 用 refresh token 换新的 token 对
func RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	uid, err := token.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, errors.Unauthorized
	}

	publicID, err := strconv.ParseInt(uid, 10, 64)
	if err != nil {
		return nil, errors.InvalidUserID
	}

	user, err := repository.GetUserByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.UserNotFound
	}

	return issueTokens(user)
}

func issueTokens(user *model.User) (*dto.TokenResponse, error) {
	uid := strconv.FormatInt(user.PublicID, 10)
	access, refresh, expiresIn, err := token.GenerateTokenPair(uid)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    expiresIn,
		UserID:       uid,
	}, nil
}
