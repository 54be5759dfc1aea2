package errors

func (d Definition) Error() string {
	return d.Message
}

// Definition 表示业务错误码及默认信息。
type Definition struct {
	Code    string
	Message string
}

// 认证相关错误。
var (
	EmailAlreadyRegistered = Definition{Code: "EMAIL_ALREADY_REGISTERED", Message: "Email already registered"}
	InvalidCredentials     = Definition{Code: "INVALID_CREDENTIALS", Message: "Invalid email or password"}
	Unauthorized           = Definition{Code: "UNAUTHORIZED", Message: "Unauthorized"}
	InvalidUserID          = Definition{Code: "INVALID_USER_ID", Message: "Invalid user ID format"}
	TooManyRequests        = Definition{Code: "TOO_MANY_REQUESTS", Message: "Too many requests"}
)

// 校验类错误：必填字段为空时在任何落库调用前拒绝。
var (
	HabitNameRequired     = Definition{Code: "HABIT_NAME_REQUIRED", Message: "Habit name is required"}
	TodoTitleRequired     = Definition{Code: "TODO_TITLE_REQUIRED", Message: "Todo title is required"}
	GoalTitleRequired     = Definition{Code: "GOAL_TITLE_REQUIRED", Message: "Goal title is required"}
	ShortcutTitleRequired = Definition{Code: "SHORTCUT_TITLE_REQUIRED", Message: "Shortcut title is required"}
	ShortcutURLRequired   = Definition{Code: "SHORTCUT_URL_REQUIRED", Message: "Shortcut URL is required"}
	ShortcutURLInvalid    = Definition{Code: "SHORTCUT_URL_INVALID", Message: "Shortcut URL is not a valid URL"}
	InvalidDate           = Definition{Code: "INVALID_DATE", Message: "Invalid date, expected YYYY-MM-DD"}
	InvalidMonth          = Definition{Code: "INVALID_MONTH", Message: "Month must be between 1 and 12"}
	InvalidClock          = Definition{Code: "INVALID_CLOCK", Message: "Invalid clock time, expected HH:MM"}
	InvalidStatus         = Definition{Code: "INVALID_STATUS", Message: "Status must be done, skip or empty"}
	InvalidQuality        = Definition{Code: "INVALID_QUALITY", Message: "Sleep quality must be between 1 and 5"}
	InvalidProgress       = Definition{Code: "INVALID_PROGRESS", Message: "Goal progress must be between 0 and 100"}
	InvalidSessionType    = Definition{Code: "INVALID_SESSION_TYPE", Message: "Session type must be stopwatch or pomodoro"}
	InvalidDuration       = Definition{Code: "INVALID_DURATION", Message: "Duration must be positive"}
)

// 资源不存在。
var (
	HabitNotFound    = Definition{Code: "HABIT_NOT_FOUND", Message: "Habit not found"}
	TodoNotFound     = Definition{Code: "TODO_NOT_FOUND", Message: "Todo not found"}
	GoalNotFound     = Definition{Code: "GOAL_NOT_FOUND", Message: "Goal not found"}
	ShortcutNotFound = Definition{Code: "SHORTCUT_NOT_FOUND", Message: "Shortcut not found"}
	UserNotFound     = Definition{Code: "USER_NOT_FOUND", Message: "User not found"}
)

// Lookup 提供错误码查询能力。
var Lookup = map[string]Definition{
	EmailAlreadyRegistered.Code: EmailAlreadyRegistered,
	InvalidCredentials.Code:     InvalidCredentials,
	Unauthorized.Code:           Unauthorized,
	InvalidUserID.Code:          InvalidUserID,
	TooManyRequests.Code:        TooManyRequests,
	HabitNameRequired.Code:      HabitNameRequired,
	TodoTitleRequired.Code:      TodoTitleRequired,
	GoalTitleRequired.Code:      GoalTitleRequired,
	ShortcutTitleRequired.Code:  ShortcutTitleRequired,
	ShortcutURLRequired.Code:    ShortcutURLRequired,
	ShortcutURLInvalid.Code:     ShortcutURLInvalid,
	InvalidDate.Code:            InvalidDate,
	InvalidMonth.Code:           InvalidMonth,
	InvalidClock.Code:           InvalidClock,
	InvalidStatus.Code:          InvalidStatus,
	InvalidQuality.Code:         InvalidQuality,
	InvalidProgress.Code:        InvalidProgress,
	InvalidSessionType.Code:     InvalidSessionType,
	InvalidDuration.Code:        InvalidDuration,
	HabitNotFound.Code:          HabitNotFound,
	TodoNotFound.Code:           TodoNotFound,
	GoalNotFound.Code:           GoalNotFound,
	ShortcutNotFound.Code:       ShortcutNotFound,
	UserNotFound.Code:           UserNotFound,
}

// Get 根据错误码返回 Definition，若不存在则返回空 Definition。
func Get(code string) Definition {
	if def, ok := Lookup[code]; ok {
		return def
	}
	return Definition{Code: code, Message: "Unexpected error"}
}
