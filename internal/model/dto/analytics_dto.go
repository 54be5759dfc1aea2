package dto

import "HabitBoard/internal/calc"

// AnalyticsSummaryRequest 月度汇总查询
type AnalyticsSummaryRequest struct {
	Month int `query:"month"`
	Year  int `query:"year"`
}

// AnalyticsSummaryResponse 月度汇总：打卡占比、每习惯表现、睡眠/专注均值
type AnalyticsSummaryResponse struct {
	Completion       calc.Breakdown    `json:"completion"`
	HabitPerformance []HabitStreakPerf `json:"habit_performance"`
	AvgSleepMinutes  float64           `json:"avg_sleep_minutes"`
	AvgSleepQuality  float64           `json:"avg_sleep_quality"`
	FocusTotalSecs   int               `json:"focus_total_seconds"`
	FocusSessions    int               `json:"focus_sessions"`
}

// HabitStreakPerf 每习惯的完成统计
type HabitStreakPerf struct {
	HabitID   string `json:"habit_id"`
	Name      string `json:"name"`
	DoneCount int    `json:"done_count"`
	SkipCount int    `json:"skip_count"`
}
