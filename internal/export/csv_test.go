package export

import (
	"strings"
	"testing"

	"HabitBoard/internal/calc"
	"HabitBoard/internal/model"
)

func exportFixture() ([]*model.Habit, *calc.Index) {
	habits := []*model.Habit{
		{BaseModel: model.BaseModel{ID: 1}, Name: "早起", Month: 3, Year: 2024},
		{BaseModel: model.BaseModel{ID: 2}, Name: "读书, 至少半小时", Month: 3, Year: 2024},
	}
	idx := calc.BuildIndex([]calc.StatusRecord{
		{EntityID: "1", Date: "2024-03-01", Status: calc.StatusDone},
		{EntityID: "1", Date: "2024-03-02", Status: calc.StatusSkip},
		{EntityID: "2", Date: "2024-03-31", Status: calc.StatusDone},
	})
	return habits, idx
}

func TestBuildMonthCSV(t *testing.T) {
	habits, idx := exportFixture()

	out, err := BuildMonthCSV(habits, idx, 2024, 3)
	if err != nil {
		t.Fatalf("BuildMonthCSV failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}

	// 表头是 Habit,1..31
	if !strings.HasPrefix(lines[0], "Habit,1,2,3,") {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if !strings.HasSuffix(lines[0], ",31") {
		t.Errorf("header should end with day 31: %s", lines[0])
	}

	if !strings.HasPrefix(lines[1], "早起,done,skip,empty,") {
		t.Errorf("unexpected first row: %s", lines[1])
	}
	// 带逗号的习惯名必须被引号包裹
	if !strings.HasPrefix(lines[2], `"读书, 至少半小时",`) {
		t.Errorf("habit name with comma should be quoted: %s", lines[2])
	}
	if !strings.HasSuffix(lines[2], ",done") {
		t.Errorf("second row should end with done on day 31: %s", lines[2])
	}
}

func TestMonthCSVRoundTrip(t *testing.T) {
	habits, idx := exportFixture()

	out, err := BuildMonthCSV(habits, idx, 2024, 3)
	if err != nil {
		t.Fatalf("BuildMonthCSV failed: %v", err)
	}

	records, err := ParseMonthCSV(strings.NewReader(out), 2024, 3)
	if err != nil {
		t.Fatalf("ParseMonthCSV failed: %v", err)
	}

	// empty 不落记录，只有 3 条非空状态
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}

	parsed := calc.BuildIndex(records)
	if got := parsed.Status("早起", "2024-03-01"); got != calc.StatusDone {
		t.Errorf("早起 2024-03-01 = %s, want done", got)
	}
	if got := parsed.Status("早起", "2024-03-02"); got != calc.StatusSkip {
		t.Errorf("早起 2024-03-02 = %s, want skip", got)
	}
	if got := parsed.Status("读书, 至少半小时", "2024-03-31"); got != calc.StatusDone {
		t.Errorf("读书 2024-03-31 = %s, want done", got)
	}
	if got := parsed.Status("早起", "2024-03-10"); got != calc.StatusEmpty {
		t.Errorf("untouched day should stay empty, got %s", got)
	}
}

func TestParseMonthCSVRejectsBadInput(t *testing.T) {
	if _, err := ParseMonthCSV(strings.NewReader("Wrong,1,2\n"), 2024, 3); err == nil {
		t.Error("expected error for wrong header")
	}

	habits, idx := exportFixture()
	out, _ := BuildMonthCSV(habits, idx, 2024, 3)
	broken := strings.Replace(out, "done", "finished", 1)
	if _, err := ParseMonthCSV(strings.NewReader(broken), 2024, 3); err == nil {
		t.Error("expected error for unknown status token")
	}
}
