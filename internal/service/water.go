package service

import (
	"context"

	"HabitBoard/internal/calc"
	"HabitBoard/internal/model"
	"HabitBoard/internal/model/dto"
	"HabitBoard/internal/repository"
	"HabitBoard/pkg/errors"
)

// GetWater 查某天的饮水计数，没有记录视为 0
func GetWater(ctx context.Context, userID int64, date string) (*dto.WaterItem, error) {
	if _, ok := calc.ParseDate(date); !ok {
		return nil, errors.InvalidDate
	}

	reminder, err := repository.GetWaterReminder(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	item := &dto.WaterItem{Date: date}
	if reminder != nil {
		item.Count = reminder.Count
	}
	return item, nil
}

// UpsertWater 直接设置某天的计数
func UpsertWater(ctx context.Context, userID int64, date string, count int) (*dto.WaterItem, error) {
	if _, ok := calc.ParseDate(date); !ok {
		return nil, errors.InvalidDate
	}
	if count < 0 {
		count = 0
	}

	if err := repository.UpsertWaterReminder(ctx, &model.WaterReminder{
		UserID: userID,
		Date:   date,
		Count:  count,
	}); err != nil {
		return nil, err
	}

	return &dto.WaterItem{Date: date, Count: count}, nil
}

// IncrementWater 计数 +1
func IncrementWater(ctx context.Context, userID int64, date string) (*dto.WaterItem, error) {
	if _, ok := calc.ParseDate(date); !ok {
		return nil, errors.InvalidDate
	}

	reminder, err := repository.IncrementWaterCount(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	item := &dto.WaterItem{Date: date}
	if reminder != nil {
		item.Count = reminder.Count
	}
	return item, nil
}
