package calc

import "testing"

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		year, month, want int
	}{
		{2024, 2, 29}, // 闰年
		{2023, 2, 28},
		{2000, 2, 29}, // 被 400 整除
		{1900, 2, 28}, // 被 100 整除但不被 400 整除
		{2024, 1, 31},
		{2024, 4, 30},
		{2024, 12, 31},
	}

	for _, c := range cases {
		if got := DaysInMonth(c.year, c.month); got != c.want {
			t.Errorf("DaysInMonth(%d, %d) = %d, want %d", c.year, c.month, got, c.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	d, ok := ParseDate("2024-02-29")
	if !ok {
		t.Fatal("expected 2024-02-29 to parse")
	}
	if d.Year != 2024 || d.Month != 2 || d.Day != 29 {
		t.Errorf("ParseDate(2024-02-29) = %+v", d)
	}

	invalid := []string{
		"2023-02-29", // 非闰年
		"2024-13-01",
		"2024-00-10",
		"2024-01-32",
		"2024-1-01", // 必须定宽
		"20240101",
		"abcd-ef-gh",
		"",
	}
	for _, s := range invalid {
		if _, ok := ParseDate(s); ok {
			t.Errorf("ParseDate(%q) should fail", s)
		}
	}
}

func TestValidDateInMonth(t *testing.T) {
	if !ValidDateInMonth("2024-03-15", 2024, 3) {
		t.Error("2024-03-15 should be valid in 2024-03")
	}
	if ValidDateInMonth("2024-04-01", 2024, 3) {
		t.Error("2024-04-01 should not be valid in 2024-03")
	}
	if ValidDateInMonth("2023-03-15", 2024, 3) {
		t.Error("different year should not be valid")
	}
}

func TestDayDates(t *testing.T) {
	dates := DayDates(2024, 2)
	if len(dates) != 29 {
		t.Fatalf("expected 29 dates for 2024-02, got %d", len(dates))
	}
	if dates[0] != "2024-02-01" {
		t.Errorf("first date = %s, want 2024-02-01", dates[0])
	}
	if dates[28] != "2024-02-29" {
		t.Errorf("last date = %s, want 2024-02-29", dates[28])
	}

	// 必须升序
	for i := 1; i < len(dates); i++ {
		if dates[i] <= dates[i-1] {
			t.Errorf("dates not ascending at %d: %s <= %s", i, dates[i], dates[i-1])
		}
	}
}
