package model

// Todo 待办事项，position 决定展示顺序
type Todo struct {
	BaseModel
	UserID    int64  `gorm:"not null;index" json:"user_id"`
	Title     string `gorm:"type:varchar(255);not null" json:"title"`
	Completed bool   `gorm:"not null;default:false" json:"completed"`
	Position  int    `gorm:"not null;default:0" json:"position"`
}

// TableName 指定表名
func (Todo) TableName() string {
	return "todos"
}
