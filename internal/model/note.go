package model

// CollegeStatus 当日的出勤标记，空串表示未标记
type CollegeStatus string

const (
	CollegeStatusClass   CollegeStatus = "C"
	CollegeStatusFree    CollegeStatus = "F"
	CollegeStatusHoliday CollegeStatus = "H"
	CollegeStatusNone    CollegeStatus = ""
)

// DailyNote 每日笔记，(user_id, date) 唯一
type DailyNote struct {
	RecordModel
	UserID        int64         `gorm:"not null;uniqueIndex:idx_daily_notes_user_date" json:"user_id"`
	Date          string        `gorm:"type:varchar(10);not null;uniqueIndex:idx_daily_notes_user_date" json:"date"`
	Content       string        `gorm:"type:text" json:"content"`
	CollegeStatus CollegeStatus `gorm:"type:varchar(1);not null;default:''" json:"college_status"`
}

// TableName 指定表名
func (DailyNote) TableName() string {
	return "daily_notes"
}
