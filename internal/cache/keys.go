package cache

import (
	"strconv"

	"HabitBoard/storage/redis"
)

// monthViewKey 月视图缓存 key: hb:monthview:{uid}:{year}:{month}
func monthViewKey(userID int64, year, month int) string {
	return redis.Key("monthview",
		strconv.FormatInt(userID, 10),
		strconv.Itoa(year),
		strconv.Itoa(month))
}

// reminderSlotKey 喝水提醒去重 key: hb:reminder:{uid}:{date}:{slot}
func reminderSlotKey(userID int64, date string, slot int) string {
	return redis.Key("reminder",
		strconv.FormatInt(userID, 10),
		date,
		strconv.Itoa(slot))
}
