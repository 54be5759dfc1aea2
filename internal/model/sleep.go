package model

// SleepLog 睡眠记录，(user_id, date) 唯一
// Duration 是派生值，落库前必须由 calc 重新计算，不信任客户端
type SleepLog struct {
	RecordModel
	UserID    int64  `gorm:"not null;uniqueIndex:idx_sleep_logs_user_date" json:"user_id"`
	Date      string `gorm:"type:varchar(10);not null;uniqueIndex:idx_sleep_logs_user_date" json:"date"`
	SleepTime string `gorm:"type:varchar(5)" json:"sleep_time"` // HH:MM
	WakeTime  string `gorm:"type:varchar(5)" json:"wake_time"`  // HH:MM
	Duration  int    `gorm:"not null;default:0" json:"duration"` // 分钟
	Quality   int    `gorm:"not null;default:3" json:"quality"`  // 1~5
	Notes     string `gorm:"type:text" json:"notes"`
}

// TableName 指定表名
func (SleepLog) TableName() string {
	return "sleep_logs"
}
