package calc

import "testing"

func TestCompletionBreakdownEmptyInput(t *testing.T) {
	b := CompletionBreakdown(nil)
	if b.Total != 0 || b.DoneCount != 0 || b.SkipCount != 0 || b.EmptyCount != 0 {
		t.Errorf("empty input should produce zero counts: %+v", b)
	}
	// 总数为 0 时百分比必须是 0，不能是 NaN
	if b.DonePercent != 0 || b.SkipPercent != 0 || b.EmptyPercent != 0 {
		t.Errorf("empty input should produce 0%%: %+v", b)
	}
}

func TestCompletionBreakdown(t *testing.T) {
	records := []StatusRecord{
		{EntityID: "h1", Date: "2024-03-01", Status: StatusDone},
		{EntityID: "h1", Date: "2024-03-02", Status: StatusDone},
		{EntityID: "h2", Date: "2024-03-01", Status: StatusSkip},
	}
	b := CompletionBreakdown(records)
	if b.DoneCount != 2 || b.SkipCount != 1 || b.EmptyCount != 0 {
		t.Errorf("counts wrong: %+v", b)
	}
	if b.DonePercent != 66.7 {
		t.Errorf("DonePercent = %v, want 66.7", b.DonePercent)
	}
	if b.SkipPercent != 33.3 {
		t.Errorf("SkipPercent = %v, want 33.3", b.SkipPercent)
	}
}

func TestPerEntityPerformanceKeepsOrderAndZeros(t *testing.T) {
	records := []StatusRecord{
		{EntityID: "h2", Date: "2024-03-01", Status: StatusDone},
		{EntityID: "h2", Date: "2024-03-02", Status: StatusSkip},
	}
	perf := PerEntityPerformance(records, []string{"h1", "h2", "h3"})
	if len(perf) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(perf))
	}
	// 顺序必须与传入的实体顺序一致
	if perf[0].EntityID != "h1" || perf[1].EntityID != "h2" || perf[2].EntityID != "h3" {
		t.Errorf("order not preserved: %+v", perf)
	}
	// 没有记录的实体报零计数而不是缺席
	if perf[0].DoneCount != 0 || perf[0].SkipCount != 0 {
		t.Errorf("h1 should have zero counts: %+v", perf[0])
	}
	if perf[1].DoneCount != 1 || perf[1].SkipCount != 1 {
		t.Errorf("h2 counts wrong: %+v", perf[1])
	}
}

func TestAverageOf(t *testing.T) {
	if got := AverageOf(nil); got != 0 {
		t.Errorf("AverageOf(nil) = %v, want 0", got)
	}
	if got := AverageOf([]float64{10, 20, 30}); got != 20 {
		t.Errorf("AverageOf([10,20,30]) = %v, want 20", got)
	}
	if got := AverageOf([]float64{7.5}); got != 7.5 {
		t.Errorf("AverageOf([7.5]) = %v, want 7.5", got)
	}
}
