package dto

// ListSleepLogsRequest 按日期区间查询睡眠记录
type ListSleepLogsRequest struct {
	StartDate string `query:"start_date"`
	EndDate   string `query:"end_date"`
}

// UpsertSleepLogRequest 按日期 upsert 睡眠记录
// duration 不接受客户端值，落库前由服务端重新计算
type UpsertSleepLogRequest struct {
	Date      string `json:"date"`
	SleepTime string `json:"sleep_time"` // HH:MM
	WakeTime  string `json:"wake_time"`  // HH:MM
	Quality   int    `json:"quality"`
	Notes     string `json:"notes"`
}

// SleepLogItem 睡眠记录条目
type SleepLogItem struct {
	Date      string `json:"date"`
	SleepTime string `json:"sleep_time"`
	WakeTime  string `json:"wake_time"`
	Duration  int    `json:"duration"`
	Quality   int    `json:"quality"`
	Notes     string `json:"notes"`
}
