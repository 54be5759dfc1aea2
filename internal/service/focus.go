package service

import (
	"context"
	"strconv"

	"HabitBoard/internal/calc"
	"HabitBoard/internal/model"
	"HabitBoard/internal/model/dto"
	"HabitBoard/internal/repository"
	"HabitBoard/pkg/errors"
)

func focusToItem(session *model.FocusSession) dto.FocusSessionItem {
	return dto.FocusSessionItem{
		ID:          strconv.FormatInt(session.ID, 10),
		Duration:    session.Duration,
		SessionType: string(session.SessionType),
		Date:        session.Date,
	}
}

// ListFocusSessions 按日期区间列出专注会话
func ListFocusSessions(ctx context.Context, userID int64, startDate, endDate string) ([]dto.FocusSessionItem, error) {
	if _, ok := calc.ParseDate(startDate); !ok {
		return nil, errors.InvalidDate
	}
	if _, ok := calc.ParseDate(endDate); !ok {
		return nil, errors.InvalidDate
	}

	sessions, err := repository.ListFocusSessions(ctx, userID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	items := make([]dto.FocusSessionItem, 0, len(sessions))
	for _, s := range sessions {
		items = append(items, focusToItem(s))
	}
	return items, nil
}

// CreateFocusSession 记录一次完成的专注会话
func CreateFocusSession(ctx context.Context, userID int64, req *dto.CreateFocusSessionRequest) (*dto.FocusSessionItem, error) {
	if _, ok := calc.ParseDate(req.Date); !ok {
		return nil, errors.InvalidDate
	}

	sessionType := model.SessionType(req.SessionType)
	if !sessionType.Valid() {
		return nil, errors.InvalidSessionType
	}
	if req.Duration <= 0 {
		return nil, errors.InvalidDuration
	}

	session := &model.FocusSession{
		UserID:      userID,
		Duration:    req.Duration,
		SessionType: sessionType,
		Date:        req.Date,
	}
	if err := repository.CreateFocusSession(ctx, session); err != nil {
		return nil, err
	}

	item := focusToItem(session)
	return &item, nil
}
