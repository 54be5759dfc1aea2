package repository

import (
	"context"

	"HabitBoard/internal/model"
	"HabitBoard/storage/database"
)

// CreateFocusSession 记录一次专注会话
func CreateFocusSession(ctx context.Context, session *model.FocusSession) error {
	return database.DB().WithContext(ctx).Create(session).Error
}

// ListFocusSessions 按日期区间列出专注会话，时间升序
func ListFocusSessions(ctx context.Context, userID int64, startDate, endDate string) ([]*model.FocusSession, error) {
	var sessions []*model.FocusSession
	err := database.DB().WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, startDate, endDate).
		Order("date ASC, created_at ASC").
		Find(&sessions).Error
	return sessions, err
}
