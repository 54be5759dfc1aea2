package model

// Shortcut 常用链接
type Shortcut struct {
	BaseModel
	UserID   int64  `gorm:"not null;index" json:"user_id"`
	Title    string `gorm:"type:varchar(128);not null" json:"title"`
	URL      string `gorm:"type:varchar(2048);not null" json:"url"`
	Category string `gorm:"type:varchar(64)" json:"category"`
	Position int    `gorm:"not null;default:0" json:"position"`
}

// TableName 指定表名
func (Shortcut) TableName() string {
	return "shortcuts"
}
