package service

import (
	"context"
	"strconv"

	"HabitBoard/internal/calc"
	"HabitBoard/internal/model/dto"
	"HabitBoard/internal/repository"
	"HabitBoard/pkg/errors"
)

// MonthlySummary 某月的打卡、睡眠、专注汇总
func MonthlySummary(ctx context.Context, userID int64, month, year int) (*dto.AnalyticsSummaryResponse, error) {
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

	// 打卡汇总覆盖整个月的格子，没打卡的格子按 empty 计入
	days := calc.DayDates(year, month)
	habitIDs := make([]string, 0, len(habits))
	records := make([]calc.StatusRecord, 0, len(habits)*len(days))
	for _, h := range habits {
		hid := strconv.FormatInt(h.ID, 10)
		habitIDs = append(habitIDs, hid)
		for _, day := range days {
			records = append(records, calc.StatusRecord{
				EntityID: hid,
				Date:     day,
				Status:   idx.Status(hid, day),
			})
		}
	}

	summary := &dto.AnalyticsSummaryResponse{
		Completion:       calc.CompletionBreakdown(records),
		HabitPerformance: make([]dto.HabitStreakPerf, 0, len(habits)),
	}

	for i, perf := range calc.PerEntityPerformance(records, habitIDs) {
		summary.HabitPerformance = append(summary.HabitPerformance, dto.HabitStreakPerf{
			HabitID:   perf.EntityID,
			Name:      habits[i].Name,
			DoneCount: perf.DoneCount,
			SkipCount: perf.SkipCount,
		})
	}

	start, end := monthRange(year, month)

	sleepLogs, err := repository.ListSleepLogs(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	durations := make([]float64, 0, len(sleepLogs))
	qualities := make([]float64, 0, len(sleepLogs))
	for _, l := range sleepLogs {
		durations = append(durations, float64(l.Duration))
		qualities = append(qualities, float64(l.Quality))
	}
	summary.AvgSleepMinutes = calc.AverageOf(durations)
	summary.AvgSleepQuality = calc.AverageOf(qualities)

	sessions, err := repository.ListFocusSessions(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	for _, s := range sessions {
		summary.FocusTotalSecs += s.Duration
	}
	summary.FocusSessions = len(sessions)

	return summary, nil
}
