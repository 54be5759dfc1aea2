package service

import (
	"context"

	"HabitBoard/internal/calc"
	"HabitBoard/internal/model"
	"HabitBoard/internal/model/dto"
	"HabitBoard/internal/repository"
	"HabitBoard/pkg/errors"
)

func sleepToItem(log *model.SleepLog) dto.SleepLogItem {
	return dto.SleepLogItem{
		Date:      log.Date,
		SleepTime: log.SleepTime,
		WakeTime:  log.WakeTime,
		Duration:  log.Duration,
		Quality:   log.Quality,
		Notes:     log.Notes,
	}
}

// ListSleepLogs 按日期区间列出睡眠记录
func ListSleepLogs(ctx context.Context, userID int64, startDate, endDate string) ([]dto.SleepLogItem, error) {
	if _, ok := calc.ParseDate(startDate); !ok {
		return nil, errors.InvalidDate
	}
	if _, ok := calc.ParseDate(endDate); !ok {
		return nil, errors.InvalidDate
	}

	logs, err := repository.ListSleepLogs(ctx, userID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	items := make([]dto.SleepLogItem, 0, len(logs))
	for _, l := range logs {
		items = append(items, sleepToItem(l))
	}
	return items, nil
}

// UpsertSleepLog 按日期写入睡眠记录，时长由服务端重新计算
func UpsertSleepLog(ctx context.Context, userID int64, req *dto.UpsertSleepLogRequest) (*dto.SleepLogItem, error) {
	if _, ok := calc.ParseDate(req.Date); !ok {
		return nil, errors.InvalidDate
	}
	if req.Quality < 1 || req.Quality > 5 {
		return nil, errors.InvalidQuality
	}

	duration, err := calc.DurationBetweenClocks(req.SleepTime, req.WakeTime)
	if err != nil {
		return nil, errors.InvalidClock
	}

	log := &model.SleepLog{
		UserID:    userID,
		Date:      req.Date,
		SleepTime: req.SleepTime,
		WakeTime:  req.WakeTime,
		Duration:  duration,
		Quality:   req.Quality,
		Notes:     req.Notes,
	}
	if err := repository.UpsertSleepLog(ctx, log); err != nil {
		return nil, err
	}

	item := sleepToItem(log)
	return &item, nil
}

// DeleteSleepLog 删除某天的睡眠记录
func DeleteSleepLog(ctx context.Context, userID int64, date string) error {
	if _, ok := calc.ParseDate(date); !ok {
		return errors.InvalidDate
	}
	return repository.DeleteSleepLog(ctx, userID, date)
}
