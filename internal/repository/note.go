package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"HabitBoard/internal/model"
	"HabitBoard/storage/database"
)

// GetDailyNote 查某天的笔记，未找到返回 (nil, nil)
func GetDailyNote(ctx context.Context, userID int64, date string) (*model.DailyNote, error) {
	var note model.DailyNote
	err := database.DB().WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&note).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// UpsertDailyNote 按 (user_id, date) upsert 笔记
func UpsertDailyNote(ctx context.Context, note *model.DailyNote) error {
	return database.DB().WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"content", "college_status", "updated_at"}),
		}).
		Create(note).Error
}
