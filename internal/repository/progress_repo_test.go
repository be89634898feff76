package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/heishia/bluroutine/internal/model"
)

func TestProgressToggle(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	routines := NewRoutineRepository(store)
	progress := NewProgressRepository(store)

	r := routines.Insert(ctx, "u1", model.RoutineInput{TimeAction: "07:00", RoutineText: "water"})

	first, err := progress.Toggle(ctx, "u1", r.ID, "2025-09-13")
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if !first.IsCompleted {
		t.Error("first toggle should create a completed row")
	}

	second, err := progress.Toggle(ctx, "u1", r.ID, "2025-09-13")
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if second.IsCompleted {
		t.Error("second toggle should clear completion")
	}
	if second.ID != first.ID {
		t.Errorf("toggle created a second row: %s vs %s", second.ID, first.ID)
	}

	if rows := progress.ListByDate(ctx, "u1", "2025-09-13"); len(rows) != 1 {
		t.Errorf("rows = %d, want 1", len(rows))
	}
	if rows := progress.ListByDate(ctx, "u1", "2025-09-14"); rows == nil || len(rows) != 0 {
		t.Errorf("other day rows = %v, want empty non-nil", rows)
	}
}

func TestProgressToggleRequiresOwnedRoutine(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	routines := NewRoutineRepository(store)
	progress := NewProgressRepository(store)

	r := routines.Insert(ctx, "u1", model.RoutineInput{TimeAction: "07:00", RoutineText: "water"})

	if _, err := progress.Toggle(ctx, "u2", r.ID, "2025-09-13"); !errors.Is(err, ErrNotFound) {
		t.Errorf("foreign toggle = %v, want ErrNotFound", err)
	}
	if _, err := progress.Toggle(ctx, "u1", "999", "2025-09-13"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing routine toggle = %v, want ErrNotFound", err)
	}
}

func TestProgressDaily(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	routines := NewRoutineRepository(store)
	progress := NewProgressRepository(store)

	r1 := routines.Insert(ctx, "u1", model.RoutineInput{TimeAction: "a", RoutineText: "1"})
	r2 := routines.Insert(ctx, "u1", model.RoutineInput{TimeAction: "b", RoutineText: "2"})
	gone := routines.Insert(ctx, "u1", model.RoutineInput{TimeAction: "c", RoutineText: "3"})

	mustToggle := func(id, date string) {
		t.Helper()
		if _, err := progress.Toggle(ctx, "u1", id, date); err != nil {
			t.Fatalf("Toggle(%s, %s): %v", id, date, err)
		}
	}
	mustToggle(r2.ID, "2025-09-13")
	mustToggle(gone.ID, "2025-09-13")
	mustToggle(r1.ID, "2025-09-14")
	if _, err := routines.Delete(ctx, "u1", gone.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	days := progress.Daily(ctx, "u1", "2025-09-13", "2025-09-14")
	if len(days) != 2 {
		t.Fatalf("days = %d, want 2", len(days))
	}

	tests := []struct {
		day  int
		want []bool
	}{
		{0, []bool{false, true}},
		{1, []bool{true, false}},
	}
	for _, tt := range tests {
		got := days[tt.day].Routines
		if len(got) != len(tt.want) {
			t.Fatalf("%s: %d routines, want %d", days[tt.day].Date, len(got), len(tt.want))
		}
		for i, w := range tt.want {
			if got[i].IsCompleted != w {
				t.Errorf("%s routine %s completed = %v, want %v", days[tt.day].Date, got[i].ID, got[i].IsCompleted, w)
			}
			if got[i].OrderIndex != i {
				t.Errorf("%s routine %d orderIndex = %d", days[tt.day].Date, i, got[i].OrderIndex)
			}
		}
	}

	// the orphaned row stays in storage
	if rows := progress.ListByDate(ctx, "u1", "2025-09-13"); len(rows) != 2 {
		t.Errorf("raw rows = %d, want 2", len(rows))
	}
}

func TestProgressDailyNoRoutines(t *testing.T) {
	progress := NewProgressRepository(NewMemoryStore())
	days := progress.Daily(context.Background(), "u1", "2025-09-13")
	if len(days) != 1 || days[0].Routines == nil || len(days[0].Routines) != 0 {
		t.Errorf("Daily = %+v, want one day with an empty routine list", days)
	}
}
