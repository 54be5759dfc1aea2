package queue

// WaterReminderMessage 喝水提醒消息
type WaterReminderMessage struct {
	MessageID string `json:"message_id"`
	UserID    int64  `json:"user_id"`
	Date      string `json:"date"`
	Slot      int    `json:"slot"` // 当天第几个提醒时段，从 0 开始
	SentAt    int64  `json:"sent_at"`
}
