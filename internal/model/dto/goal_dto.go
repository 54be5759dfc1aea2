package dto

// CreateGoalRequest 创建目标
type CreateGoalRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	TargetDate  string `json:"target_date"`
}

// UpdateGoalRequest 更新目标
type UpdateGoalRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	TargetDate  *string `json:"target_date"`
	Completed   *bool   `json:"completed"`
	Progress    *int    `json:"progress"`
}

// GoalItem 目标条目
type GoalItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	TargetDate  string `json:"target_date"`
	Completed   bool   `json:"completed"`
	Progress    int    `json:"progress"`
}
