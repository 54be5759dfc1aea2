package dto

// ListFocusSessionsRequest 按日期区间查询专注会话
type ListFocusSessionsRequest struct {
	StartDate string `query:"start_date"`
	EndDate   string `query:"end_date"`
}

// CreateFocusSessionRequest 记录一次完成的专注会话
type CreateFocusSessionRequest struct {
	Duration    int    `json:"duration"` // 秒
	SessionType string `json:"session_type"`
	Date        string `json:"date"`
}

// FocusSessionItem 专注会话条目
type FocusSessionItem struct {
	ID          string `json:"id"`
	Duration    int    `json:"duration"`
	SessionType string `json:"session_type"`
	Date        string `json:"date"`
}
