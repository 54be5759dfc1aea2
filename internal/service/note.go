package service

import (
	"context"

	"HabitBoard/internal/calc"
	"HabitBoard/internal/model"
	"HabitBoard/internal/model/dto"
	"HabitBoard/internal/repository"
	"HabitBoard/pkg/errors"
)

// GetNote 查某天的笔记，没有记录返回空内容
func GetNote(ctx context.Context, userID int64, date string) (*dto.NoteItem, error) {
	if _, ok := calc.ParseDate(date); !ok {
		return nil, errors.InvalidDate
	}

	note, err := repository.GetDailyNote(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	item := &dto.NoteItem{Date: date}
	if note != nil {
		item.Content = note.Content
		item.CollegeStatus = string(note.CollegeStatus)
	}
	return item, nil
}

// UpsertNote 按日期写入笔记
func UpsertNote(ctx context.Context, userID int64, date string, req *dto.UpsertNoteRequest) (*dto.NoteItem, error) {
	if _, ok := calc.ParseDate(date); !ok {
		return nil, errors.InvalidDate
	}

	status := model.CollegeStatus(req.CollegeStatus)
	switch status {
	case model.CollegeStatusClass, model.CollegeStatusFree, model.CollegeStatusHoliday, model.CollegeStatusNone:
	default:
		return nil, errors.InvalidStatus
	}

	note := &model.DailyNote{
		UserID:        userID,
		Date:          date,
		Content:       req.Content,
		CollegeStatus: status,
	}
	if err := repository.UpsertDailyNote(ctx, note); err != nil {
		return nil, err
	}

	return &dto.NoteItem{
		Date:          date,
		Content:       note.Content,
		CollegeStatus: string(note.CollegeStatus),
	}, nil
}
