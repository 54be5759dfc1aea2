package dto

// ListHabitsRequest 按月查询习惯
type ListHabitsRequest struct {
	Month int `query:"month"`
	Year  int `query:"year"`
}

// CreateHabitRequest 创建习惯
type CreateHabitRequest struct {
	Name     string `json:"name"`
	Priority int    `json:"priority"`
	Month    int    `json:"month"`
	Year     int    `json:"year"`
}

// UpdateHabitRequest 更新习惯，指针字段表示可选
type UpdateHabitRequest struct {
	Name     *string `json:"name"`
	Priority *int    `json:"priority"`
}

// HabitItem 习惯条目
type HabitItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Priority int    `json:"priority"`
	Month    int    `json:"month"`
	Year     int    `json:"year"`
}

// HabitLogItem 单条打卡记录
type HabitLogItem struct {
	HabitID string `json:"habit_id"`
	Date    string `json:"date"`
	Status  string `json:"status"`
}

// UpsertHabitLogRequest 直接写入某天的状态
type UpsertHabitLogRequest struct {
	Status string `json:"status"`
}

// ListHabitLogsRequest 批量拉取打卡记录
type ListHabitLogsRequest struct {
	HabitIDs []string `query:"habit_ids"`
}

// HabitStreakItem 单个习惯的当前连续天数
type HabitStreakItem struct {
	HabitID string `json:"habit_id"`
	Name    string `json:"name"`
	Streak  int    `json:"streak"`
}

// MonthGridResponse 月视图：日期轴 + 每习惯每天的状态矩阵
type MonthGridResponse struct {
	Days   []string            `json:"days"`
	Habits []HabitItem         `json:"habits"`
	Matrix map[string][]string `json:"matrix"` // habit_id -> 与 Days 对齐的状态序列
}
