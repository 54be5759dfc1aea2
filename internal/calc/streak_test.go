package calc

import "testing"

// 2024 年 3 月的场景：1:done 2:done 3:skip 4:done 5:empty 6:done
func marchIndex() *Index {
	return BuildIndex([]StatusRecord{
		{EntityID: "h1", Date: "2024-03-01", Status: StatusDone},
		{EntityID: "h1", Date: "2024-03-02", Status: StatusDone},
		{EntityID: "h1", Date: "2024-03-03", Status: StatusSkip},
		{EntityID: "h1", Date: "2024-03-04", Status: StatusDone},
		{EntityID: "h1", Date: "2024-03-05", Status: StatusEmpty},
		{EntityID: "h1", Date: "2024-03-06", Status: StatusDone},
	})
}

func TestCurrentStreakSkipDoesNotBreak(t *testing.T) {
	idx := marchIndex()
	// 4(done) -> 3(skip, 跳过) -> 2(done) -> 1(done) = 3
	got := CurrentStreak("h1", Date{2024, 3, 4}, 2024, 3, idx)
	if got != 3 {
		t.Errorf("streak at day 4 = %d, want 3", got)
	}
}

func TestCurrentStreakEmptyBreaks(t *testing.T) {
	idx := marchIndex()
	// 6(done) -> 5(empty, 立即停止) = 1
	got := CurrentStreak("h1", Date{2024, 3, 6}, 2024, 3, idx)
	if got != 1 {
		t.Errorf("streak at day 6 = %d, want 1", got)
	}
}

func TestCurrentStreakDayOne(t *testing.T) {
	idx := marchIndex()
	if got := CurrentStreak("h1", Date{2024, 3, 1}, 2024, 3, idx); got != 1 {
		t.Errorf("streak at day 1 = %d, want 1", got)
	}
}

func TestCurrentStreakNoRecords(t *testing.T) {
	idx := BuildIndex(nil)
	if got := CurrentStreak("h1", Date{2024, 3, 15}, 2024, 3, idx); got != 0 {
		t.Errorf("streak with no records = %d, want 0", got)
	}
}

func TestCurrentStreakOtherMonthIsZero(t *testing.T) {
	idx := marchIndex()
	// 查看的不是 today 所在月份，定义为 0
	if got := CurrentStreak("h1", Date{2024, 4, 2}, 2024, 3, idx); got != 0 {
		t.Errorf("streak for past month viewport = %d, want 0", got)
	}
	if got := CurrentStreak("h1", Date{2024, 3, 4}, 2024, 4, idx); got != 0 {
		t.Errorf("streak for future month viewport = %d, want 0", got)
	}
	if got := CurrentStreak("h1", Date{2025, 3, 4}, 2024, 3, idx); got != 0 {
		t.Errorf("streak for other year viewport = %d, want 0", got)
	}
}

func TestCurrentStreakFullMonth(t *testing.T) {
	records := make([]StatusRecord, 0, 31)
	for day := 1; day <= 31; day++ {
		records = append(records, StatusRecord{
			EntityID: "h1",
			Date:     FormatDate(2024, 1, day),
			Status:   StatusDone,
		})
	}
	idx := BuildIndex(records)
	if got := CurrentStreak("h1", Date{2024, 1, 31}, 2024, 1, idx); got != 31 {
		t.Errorf("full month streak = %d, want 31", got)
	}
}
