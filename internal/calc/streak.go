package calc

// Date 逻辑日期三元组，和全局时钟解耦，方便测试
type Date struct {
	Year  int
	Month int
	Day   int
}

// CurrentStreak 计算当前连续天数
//
// 只有当前查看的 (viewYear, viewMonth) 就是 today 所在月时才有意义，
// 查看过去或未来的月份时直接定义为 0。
// 否则从 today.Day 逐日向前回溯：
//   - done：计数 +1，继续往前
//   - skip：不计数也不中断（视为请假），继续往前
//   - empty：立即停止，不含当天
//
// 回溯到 1 号为止。纯函数，不读时钟，不做 I/O。
func CurrentStreak(entityID string, today Date, viewYear, viewMonth int, idx *Index) int {
	if viewYear != today.Year || viewMonth != today.Month {
		return 0
	}

	streak := 0
	for day := today.Day; day >= 1; day-- {
		switch idx.Status(entityID, FormatDate(today.Year, today.Month, day)) {
		case StatusDone:
			streak++
		case StatusSkip:
			// 请假日不加分也不断档
		default:
			return streak
		}
	}
	return streak
}
