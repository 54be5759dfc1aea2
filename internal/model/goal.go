package model

// Goal 长期目标，progress 0~100
type Goal struct {
	BaseModel
	UserID      int64  `gorm:"not null;index" json:"user_id"`
	Title       string `gorm:"type:varchar(255);not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	TargetDate  string `gorm:"type:varchar(10)" json:"target_date"`
	Completed   bool   `gorm:"not null;default:false" json:"completed"`
	Progress    int    `gorm:"not null;default:0" json:"progress"`
}

// TableName 指定表名
func (Goal) TableName() string {
	return "goals"
}
