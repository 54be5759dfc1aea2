package model

// WaterReminder 当日饮水计数，(user_id, date) 唯一
type WaterReminder struct {
	RecordModel
	UserID int64  `gorm:"not null;uniqueIndex:idx_water_reminders_user_date" json:"user_id"`
	Date   string `gorm:"type:varchar(10);not null;uniqueIndex:idx_water_reminders_user_date" json:"date"`
	Count  int    `gorm:"not null;default:0" json:"count"`
}

// TableName 指定表名
func (WaterReminder) TableName() string {
	return "water_reminders"
}
