package dto

// UpsertNoteRequest 按日期 upsert 每日笔记
type UpsertNoteRequest struct {
	Content       string `json:"content"`
	CollegeStatus string `json:"college_status"` // C / F / H / ""
}

// NoteItem 每日笔记
type NoteItem struct {
	Date          string `json:"date"`
	Content       string `json:"content"`
	CollegeStatus string `json:"college_status"`
}
