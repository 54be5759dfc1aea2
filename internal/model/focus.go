package model

// SessionType 专注会话类型
type SessionType string

const (
	SessionTypeStopwatch SessionType = "stopwatch"
	SessionTypePomodoro  SessionType = "pomodoro"
)

// Valid 校验会话类型
func (t SessionType) Valid() bool {
	return t == SessionTypeStopwatch || t == SessionTypePomodoro
}

// FocusSession 一次完成的专注会话，duration 单位秒
type FocusSession struct {
	BaseModel
	UserID      int64       `gorm:"not null;index:idx_focus_sessions_user_date" json:"user_id"`
	Duration    int         `gorm:"not null" json:"duration"`
	SessionType SessionType `gorm:"type:varchar(16);not null" json:"session_type"`
	Date        string      `gorm:"type:varchar(10);not null;index:idx_focus_sessions_user_date" json:"date"`
}

// TableName 指定表名
func (FocusSession) TableName() string {
	return "focus_sessions"
}
