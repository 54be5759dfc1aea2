package model

import "HabitBoard/internal/calc"

// Habit 按月存在的习惯，换月即是新的一条记录（同名不同月）
type Habit struct {
	BaseModel
	UserID   int64  `gorm:"not null;index:idx_habits_user_month_year" json:"user_id"`
	Name     string `gorm:"type:varchar(128);not null" json:"name"`
	Priority int    `gorm:"not null;default:0" json:"priority"`
	Month    int    `gorm:"not null;index:idx_habits_user_month_year" json:"month"`
	Year     int    `gorm:"not null;index:idx_habits_user_month_year" json:"year"`
}

// TableName 指定表名
func (Habit) TableName() string {
	return "habits"
}

// HabitLog 某习惯某天的打卡状态，(habit_id, date) 唯一，靠 upsert 保证不重复
// 状态回到 empty 时直接硬删行，删后可以再次 upsert 同一天
type HabitLog struct {
	RecordModel
	HabitID int64       `gorm:"not null;uniqueIndex:idx_habit_logs_habit_date" json:"habit_id"`
	Date    string      `gorm:"type:varchar(10);not null;uniqueIndex:idx_habit_logs_habit_date" json:"date"`
	Status  calc.Status `gorm:"type:varchar(8);not null;default:'empty'" json:"status"`
}

// TableName 指定表名
func (HabitLog) TableName() string {
	return "habit_logs"
}
