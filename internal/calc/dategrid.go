package calc

import "fmt"

// 月份天数表，2 月单独处理闰年
var monthDays = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapYear 标准格里高利闰年规则：能被 4 整除且不能被 100 整除，或能被 400 整除
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysInMonth 返回指定年月的天数（28~31）
// month 超出 1~12 属于调用方错误，行为未定义
func DaysInMonth(year, month int) int {
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return monthDays[month]
}

// FormatDate 序列化为 YYYY-MM-DD，定宽，可直接做索引键
func FormatDate(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// ValidMonth 校验月份
func ValidMonth(month int) bool {
	return month >= 1 && month <= 12
}

// ParseDate 解析 YYYY-MM-DD，带日历合法性检查
func ParseDate(s string) (Date, bool) {
	var d Date
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return Date{}, false
	}
	if _, err := fmt.Sscanf(s, "%4d-%2d-%2d", &d.Year, &d.Month, &d.Day); err != nil {
		return Date{}, false
	}
	if !ValidMonth(d.Month) || d.Day < 1 || d.Day > DaysInMonth(d.Year, d.Month) {
		return Date{}, false
	}
	return d, true
}

// ValidDateInMonth 校验日期串合法且落在指定年月内
func ValidDateInMonth(date string, year, month int) bool {
	d, ok := ParseDate(date)
	return ok && d.Year == year && d.Month == month
}

// DayDates 返回指定年月的全部日期，升序，1 号到月末
func DayDates(year, month int) []string {
	n := DaysInMonth(year, month)
	dates := make([]string, 0, n)
	for day := 1; day <= n; day++ {
		dates = append(dates, FormatDate(year, month, day))
	}
	return dates
}
