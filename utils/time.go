package utils

import "time"

const DateLayout = "2006-01-02"

// Today 返回当天的 YYYY-MM-DD
func Today() string {
	return time.Now().Format(DateLayout)
}
