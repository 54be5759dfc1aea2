package service

import (
	"context"

	"HabitBoard/internal/calc"
	"HabitBoard/internal/export"
	"HabitBoard/internal/repository"
	"HabitBoard/pkg/errors"
)

// ExportMonthCSV 导出某月全部习惯的打卡表
func ExportMonthCSV(ctx context.Context, userID int64, month, year int) (string, error) {
	if !calc.ValidMonth(month) {
		return "", errors.InvalidMonth
	}

	habits, err := repository.ListHabitsByMonth(ctx, userID, month, year)
	if err != nil {
		return "", err
	}

	idx, err := buildMonthIndex(ctx, habits, month, year)
	if err != nil {
		return "", err
	}

	return export.BuildMonthCSV(habits, idx, year, month)
}
