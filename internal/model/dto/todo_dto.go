package dto

// CreateTodoRequest 创建待办
type CreateTodoRequest struct {
	Title    string `json:"title"`
	Position int    `json:"position"`
}

// UpdateTodoRequest 更新待办
type UpdateTodoRequest struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
	Position  *int    `json:"position"`
}

// TodoItem 待办条目
type TodoItem struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	Position  int    `json:"position"`
}
