package calc

import "testing"

func TestIndexDefaultsToEmpty(t *testing.T) {
	idx := BuildIndex([]StatusRecord{
		{EntityID: "h1", Date: "2024-03-01", Status: StatusDone},
	})

	if got := idx.Status("h1", "2024-03-01"); got != StatusDone {
		t.Errorf("Status(h1, 2024-03-01) = %s, want done", got)
	}
	if got := idx.Status("h1", "2024-03-02"); got != StatusEmpty {
		t.Errorf("missing date should be empty, got %s", got)
	}
	if got := idx.Status("h2", "2024-03-01"); got != StatusEmpty {
		t.Errorf("missing entity should be empty, got %s", got)
	}
}

func TestIndexNilSafe(t *testing.T) {
	var idx *Index
	if got := idx.Status("h1", "2024-03-01"); got != StatusEmpty {
		t.Errorf("nil index should return empty, got %s", got)
	}
	if idx.Len() != 0 {
		t.Errorf("nil index Len() = %d, want 0", idx.Len())
	}
}

func TestIndexUpsertSemantics(t *testing.T) {
	// 同一 (entity, date) 的后写覆盖先写，不会出现重复条目
	idx := BuildIndex([]StatusRecord{
		{EntityID: "h1", Date: "2024-03-01", Status: StatusDone},
		{EntityID: "h1", Date: "2024-03-01", Status: StatusSkip},
	})
	if idx.Len() != 1 {
		t.Errorf("Len() = %d, want 1", idx.Len())
	}
	if got := idx.Status("h1", "2024-03-01"); got != StatusSkip {
		t.Errorf("Status = %s, want skip", got)
	}
}

func TestStatusCycle(t *testing.T) {
	cases := []struct{ from, want Status }{
		{StatusEmpty, StatusDone},
		{StatusDone, StatusSkip},
		{StatusSkip, StatusEmpty},
		{Status("bogus"), StatusDone},
	}
	for _, c := range cases {
		if got := c.from.Next(); got != c.want {
			t.Errorf("%s.Next() = %s, want %s", c.from, got, c.want)
		}
	}
}
