package dto

// CreateShortcutRequest 创建快捷方式
type CreateShortcutRequest struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	Category string `json:"category"`
	Position int    `json:"position"`
}

// UpdateShortcutRequest 更新快捷方式
type UpdateShortcutRequest struct {
	Title    *string `json:"title"`
	URL      *string `json:"url"`
	Category *string `json:"category"`
	Position *int    `json:"position"`
}

// ShortcutItem 快捷方式条目
type ShortcutItem struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	Category string `json:"category"`
	Position int    `json:"position"`
}
