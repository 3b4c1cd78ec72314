package repository

import (
	"testing"
	"time"
)

func TestFillDailyCounts(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, 8, 22, 0, 0, 0, 0, time.UTC)
	byDay := map[string]int{
		"2026-08-22": 3,
		"2026-08-25": 1,
	}

	out := fillDailyCounts(byDay, start, 7)
	if len(out) != 7 {
		t.Fatalf("expected 7 buckets, got %d", len(out))
	}
	expected := []int{3, 0, 0, 1, 0, 0, 0}
	for i, want := range expected {
		if out[i].Count != want {
			t.Fatalf("day %d: expected count %d, got %d", i, want, out[i].Count)
		}
		wantDay := start.AddDate(0, 0, i)
		if !out[i].Day.Equal(wantDay) {
			t.Fatalf("day %d: expected %s, got %s", i, wantDay, out[i].Day)
		}
	}
}
