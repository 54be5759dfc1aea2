package service

import (
	"context"
	"strconv"
	"time"

	"HabitBoard/internal/cache"
	"HabitBoard/internal/calc"
	"HabitBoard/internal/model"
	"HabitBoard/internal/model/dto"
	"HabitBoard/internal/repository"
	"HabitBoard/pkg/errors"
)

// monthRange 返回某月首末两天的日期串
func monthRange(year, month int) (string, string) {
	return calc.FormatDate(year, month, 1),
		calc.FormatDate(year, month, calc.DaysInMonth(year, month))
}

func parseEntityID(raw string, notFound errors.Definition) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, notFound
	}
	return id, nil
}

func habitToItem(habit *model.Habit) dto.HabitItem {
	return dto.HabitItem{
		ID:       strconv.FormatInt(habit.ID, 10),
		Name:     habit.Name,
		Priority: habit.Priority,
		Month:    habit.Month,
		Year:     habit.Year,
	}
}

// ListHabits 列出某月的习惯
func ListHabits(ctx context.Context, userID int64, month, year int) ([]dto.HabitItem, error) {
	if !calc.ValidMonth(month) {
		return nil, errors.InvalidMonth
	}

	habits, err := repository.ListHabitsByMonth(ctx, userID, month, year)
	if err != nil {
		return nil, err
	}

	items := make([]dto.HabitItem, 0, len(habits))
	for _, h := range habits {
		items = append(items, habitToItem(h))
	}
	return items, nil
}

// CreateHabit 创建习惯
func CreateHabit(ctx context.Context, userID int64, req *dto.CreateHabitRequest) (*dto.HabitItem, error) {
	if req.Name == "" {
		return nil, errors.HabitNameRequired
	}
	if !calc.ValidMonth(req.Month) {
		return nil, errors.InvalidMonth
	}

	habit := &model.Habit{
		UserID:   userID,
		Name:     req.Name,
		Priority: req.Priority,
		Month:    req.Month,
		Year:     req.Year,
	}
	if err := repository.CreateHabit(ctx, habit); err != nil {
		return nil, err
	}

	cache.InvalidateMonthView(ctx, userID, habit.Year, habit.Month)

	item := habitToItem(habit)
	return &item, nil
}

// UpdateHabit 更新习惯名称或优先级
func UpdateHabit(ctx context.Context, userID int64, habitID string, req *dto.UpdateHabitRequest) (*dto.HabitItem, error) {
	id, err := parseEntityID(habitID, errors.HabitNotFound)
	if err != nil {
		return nil, err
	}

	habit, err := repository.GetHabit(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if habit == nil {
		return nil, errors.HabitNotFound
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		if *req.Name == "" {
			return nil, errors.HabitNameRequired
		}
		updates["name"] = *req.Name
		habit.Name = *req.Name
	}
	if req.Priority != nil {
		updates["priority"] = *req.Priority
		habit.Priority = *req.Priority
	}

	if len(updates) > 0 {
		if err := repository.UpdateHabit(ctx, userID, id, updates); err != nil {
			return nil, err
		}
		cache.InvalidateMonthView(ctx, userID, habit.Year, habit.Month)
	}

	item := habitToItem(habit)
	return &item, nil
}

// DeleteHabit 删除习惯及其打卡记录
func DeleteHabit(ctx context.Context, userID int64, habitID string) error {
	id, err := parseEntityID(habitID, errors.HabitNotFound)
	if err != nil {
		return err
	}

	habit, err := repository.GetHabit(ctx, userID, id)
	if err != nil {
		return err
	}
	if habit == nil {
		return errors.HabitNotFound
	}

	if err := repository.DeleteHabit(ctx, userID, id); err != nil {
		return err
	}

	cache.InvalidateMonthView(ctx, userID, habit.Year, habit.Month)
	return nil
}

// ListHabitLogs 批量拉取多个习惯在某月的打卡记录
func ListHabitLogs(ctx context.Context, userID int64, habitIDs []string, month, year int) ([]dto.HabitLogItem, error) {
	if !calc.ValidMonth(month) {
		return nil, errors.InvalidMonth
	}

	ids, err := ownedHabitIDs(ctx, userID, habitIDs, month, year)
	if err != nil {
		return nil, err
	}

	start, end := monthRange(year, month)
	logs, err := repository.ListHabitLogs(ctx, ids, start, end)
	if err != nil {
		return nil, err
	}

	items := make([]dto.HabitLogItem, 0, len(logs))
	for _, l := range logs {
		items = append(items, dto.HabitLogItem{
			HabitID: strconv.FormatInt(l.HabitID, 10),
			Date:    l.Date,
			Status:  string(l.Status),
		})
	}
	return items, nil
}

// ownedHabitIDs 把请求里的习惯 ID 过滤成该用户当月真实拥有的集合
// 请求为空时返回当月全部习惯
func ownedHabitIDs(ctx context.Context, userID int64, habitIDs []string, month, year int) ([]int64, error) {
	habits, err := repository.ListHabitsByMonth(ctx, userID, month, year)
	if err != nil {
		return nil, err
	}

	owned := make(map[int64]bool, len(habits))
	for _, h := range habits {
		owned[h.ID] = true
	}

	if len(habitIDs) == 0 {
		ids := make([]int64, 0, len(habits))
		for _, h := range habits {
			ids = append(ids, h.ID)
		}
		return ids, nil
	}

	ids := make([]int64, 0, len(habitIDs))
	for _, raw := range habitIDs {
		id, err := parseEntityID(raw, errors.HabitNotFound)
		if err != nil {
			return nil, err
		}
		if !owned[id] {
			return nil, errors.HabitNotFound
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// UpsertHabitLog 直接写入某习惯某天的状态
func UpsertHabitLog(ctx context.Context, userID int64, habitID, date, status string) (*dto.HabitLogItem, error) {
	id, habit, err := ownedHabit(ctx, userID, habitID)
	if err != nil {
		return nil, err
	}
	if !calc.ValidDateInMonth(date, habit.Year, habit.Month) {
		return nil, errors.InvalidDate
	}

	st := calc.Status(status)
	if !st.Valid() {
		return nil, errors.InvalidStatus
	}

	if err := writeLogStatus(ctx, id, date, st); err != nil {
		return nil, err
	}

	cache.InvalidateMonthView(ctx, userID, habit.Year, habit.Month)

	return &dto.HabitLogItem{HabitID: habitID, Date: date, Status: string(st)}, nil
}

// ToggleHabitLog 按固定循环推进某天的状态
func ToggleHabitLog(ctx context.Context, userID int64, habitID, date string) (*dto.HabitLogItem, error) {
	id, habit, err := ownedHabit(ctx, userID, habitID)
	if err != nil {
		return nil, err
	}
	if !calc.ValidDateInMonth(date, habit.Year, habit.Month) {
		return nil, errors.InvalidDate
	}

	current := calc.StatusEmpty
	log, err := repository.GetHabitLog(ctx, id, date)
	if err != nil {
		return nil, err
	}
	if log != nil {
		current = log.Status
	}

	next := current.Next()
	if err := writeLogStatus(ctx, id, date, next); err != nil {
		return nil, err
	}

	cache.InvalidateMonthView(ctx, userID, habit.Year, habit.Month)

	return &dto.HabitLogItem{HabitID: habitID, Date: date, Status: string(next)}, nil
}

// writeLogStatus 落库：empty 直接删行，其余 upsert
func writeLogStatus(ctx context.Context, habitID int64, date string, status calc.Status) error {
	if status == calc.StatusEmpty {
		return repository.DeleteHabitLog(ctx, habitID, date)
	}
	return repository.UpsertHabitLog(ctx, &model.HabitLog{
		HabitID: habitID,
		Date:    date,
		Status:  status,
	})
}

func ownedHabit(ctx context.Context, userID int64, habitID string) (int64, *model.Habit, error) {
	id, err := parseEntityID(habitID, errors.HabitNotFound)
	if err != nil {
		return 0, nil, err
	}

	habit, err := repository.GetHabit(ctx, userID, id)
	if err != nil {
		return 0, nil, err
	}
	if habit == nil {
		return 0, nil, errors.HabitNotFound
	}
	return id, habit, nil
}

// HabitStreaks 计算当前视图月份内每个习惯的连续天数
func HabitStreaks(ctx context.Context, userID int64, month, year int) ([]dto.HabitStreakItem, error) {
	if !calc.ValidMonth(month) {
		return nil, errors.InvalidMonth
	}

	habits, err := repository.ListHabitsByMonth(ctx, userID, month, year)
	if err != nil {
		return nil, err
	}

	idx, err := buildMonthIndex(ctx, habits, month, year)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	today := calc.Date{Year: now.Year(), Month: int(now.Month()), Day: now.Day()}

	items := make([]dto.HabitStreakItem, 0, len(habits))
	for _, h := range habits {
		hid := strconv.FormatInt(h.ID, 10)
		items = append(items, dto.HabitStreakItem{
			HabitID: hid,
			Name:    h.Name,
			Streak:  calc.CurrentStreak(hid, today, year, month, idx),
		})
	}
	return items, nil
}

// MonthGrid 返回月视图：日期轴 + 习惯 + 状态矩阵，带 redis 缓存
func MonthGrid(ctx context.Context, userID int64, month, year int) (*dto.MonthGridResponse, error) {
	if !calc.ValidMonth(month) {
		return nil, errors.InvalidMonth
	}

	var cached dto.MonthGridResponse
	if cache.GetMonthView(ctx, userID, year, month, &cached) {
		return &cached, nil
	}

	habits, err := repository.ListHabitsByMonth(ctx, userID, month, year)
	if err != nil {
		return nil, err
	}

	idx, err := buildMonthIndex(ctx, habits, month, year)
	if err != nil {
		return nil, err
	}

	days := calc.DayDates(year, month)
	grid := &dto.MonthGridResponse{
		Days:   days,
		Habits: make([]dto.HabitItem, 0, len(habits)),
		Matrix: make(map[string][]string, len(habits)),
	}

	for _, h := range habits {
		hid := strconv.FormatInt(h.ID, 10)
		grid.Habits = append(grid.Habits, habitToItem(h))

		row := make([]string, 0, len(days))
		for _, day := range days {
			row = append(row, string(idx.Status(hid, day)))
		}
		grid.Matrix[hid] = row
	}

	cache.SetMonthView(ctx, userID, year, month, grid)
	return grid, nil
}

// buildMonthIndex 把某月全部打卡记录装进查询索引
func buildMonthIndex(ctx context.Context, habits []*model.Habit, month, year int) (*calc.Index, error) {
	ids := make([]int64, 0, len(habits))
	for _, h := range habits {
		ids = append(ids, h.ID)
	}

	start, end := monthRange(year, month)
	logs, err := repository.ListHabitLogs(ctx, ids, start, end)
	if err != nil {
		return nil, err
	}

	records := make([]calc.StatusRecord, 0, len(logs))
	for _, l := range logs {
		records = append(records, calc.StatusRecord{
			EntityID: strconv.FormatInt(l.HabitID, 10),
			Date:     l.Date,
			Status:   l.Status,
		})
	}
	return calc.BuildIndex(records), nil
}
