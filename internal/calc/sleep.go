package calc

import "fmt"

const minutesPerDay = 24 * 60

// ParseClock 解析 HH:MM 墙上时钟为零点起的分钟数（0~1439）
func ParseClock(clock string) (int, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(clock, "%d:%d", &hour, &minute); err != nil {
		return 0, fmt.Errorf("invalid clock %q: %w", clock, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("clock %q out of range", clock)
	}
	return hour*60 + minute, nil
}

// DurationMinutes 由入睡/醒来时钟计算睡眠时长，单位分钟，范围 [0, 1439]
//
// 两个输入都是不带日期的墙上时间，模型假设醒来在当天或次日，
// 不会超过 24 小时。wake < sleep 视为跨午夜，加一天再减。
// 注意：sleep == wake 返回 0 而不是 1440，这是沿袭下来的既定行为
// （同一时刻视为零时长），不要"修正"。
func DurationMinutes(sleepMinutes, wakeMinutes int) int {
	if wakeMinutes < sleepMinutes {
		wakeMinutes += minutesPerDay
	}
	return wakeMinutes - sleepMinutes
}

// DurationBetweenClocks 字符串版本的便捷封装
func DurationBetweenClocks(sleepClock, wakeClock string) (int, error) {
	sleepMin, err := ParseClock(sleepClock)
	if err != nil {
		return 0, err
	}
	wakeMin, err := ParseClock(wakeClock)
	if err != nil {
		return 0, err
	}
	return DurationMinutes(sleepMin, wakeMin), nil
}
