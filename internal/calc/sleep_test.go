package calc

import "testing"

func TestDurationBetweenClocks(t *testing.T) {
	cases := []struct {
		sleep, wake string
		want        int
	}{
		{"22:00", "06:00", 480}, // 跨午夜
		{"23:30", "23:30", 0},   // 相同时刻定义为 0 而不是 1440
		{"06:00", "06:01", 1},
		{"00:00", "23:59", 1439},
		{"23:59", "00:00", 1},
		{"09:30", "17:15", 465},
	}

	for _, c := range cases {
		got, err := DurationBetweenClocks(c.sleep, c.wake)
		if err != nil {
			t.Errorf("DurationBetweenClocks(%s, %s) error: %v", c.sleep, c.wake, err)
			continue
		}
		if got != c.want {
			t.Errorf("DurationBetweenClocks(%s, %s) = %d, want %d", c.sleep, c.wake, got, c.want)
		}
	}
}

func TestParseClockRejectsInvalid(t *testing.T) {
	for _, clock := range []string{"", "24:00", "12:60", "abc", "-1:30"} {
		if _, err := ParseClock(clock); err == nil {
			t.Errorf("ParseClock(%q) should fail", clock)
		}
	}
}

func TestDurationMinutesRange(t *testing.T) {
	for sleep := 0; sleep < minutesPerDay; sleep += 173 {
		for wake := 0; wake < minutesPerDay; wake += 211 {
			got := DurationMinutes(sleep, wake)
			if got < 0 || got > 1439 {
				t.Fatalf("DurationMinutes(%d, %d) = %d out of [0, 1439]", sleep, wake, got)
			}
		}
	}
}
