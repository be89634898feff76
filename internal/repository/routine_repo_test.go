package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/heishia/bluroutine/internal/model"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func assertContiguous(t *testing.T, routines []model.Routine) {
	t.Helper()
	for i, r := range routines {
		if r.OrderIndex != i {
			t.Fatalf("routine %s at position %d has orderIndex %d", r.ID, i, r.OrderIndex)
		}
	}
}

func ids(routines []model.Routine) []string {
	out := make([]string, 0, len(routines))
	for _, r := range routines {
		out = append(out, r.ID)
	}
	return out
}

func TestRoutineInsertAppends(t *testing.T) {
	ctx := context.Background()
	repo := NewRoutineRepository(NewMemoryStore())

	first := repo.Insert(ctx, "u1", model.RoutineInput{TimeAction: "07:00", RoutineText: "water"})
	second := repo.Insert(ctx, "u1", model.RoutineInput{TimeAction: "08:00", RoutineText: "run"})
	other := repo.Insert(ctx, "u2", model.RoutineInput{TimeAction: "09:00", RoutineText: "read"})

	if first.OrderIndex != 0 || second.OrderIndex != 1 {
		t.Errorf("order = %d,%d, want 0,1", first.OrderIndex, second.OrderIndex)
	}
	if other.OrderIndex != 0 {
		t.Errorf("other owner's first routine orderIndex = %d, want 0", other.OrderIndex)
	}
	if first.ID == second.ID || second.ID == other.ID {
		t.Error("ids must be unique")
	}
	if !first.CreatedAt.Equal(first.UpdatedAt) {
		t.Error("created and updated should be stamped together")
	}
}

func TestRoutineDeleteReindexes(t *testing.T) {
	ctx := context.Background()
	repo := NewRoutineRepository(NewMemoryStore())

	r1 := repo.Insert(ctx, "u1", model.RoutineInput{TimeAction: "a", RoutineText: "1"})
	r2 := repo.Insert(ctx, "u1", model.RoutineInput{TimeAction: "b", RoutineText: "2"})
	r3 := repo.Insert(ctx, "u1", model.RoutineInput{TimeAction: "c", RoutineText: "3"})
	o1 := repo.Insert(ctx, "u2", model.RoutineInput{TimeAction: "x", RoutineText: "x"})
	o2 := repo.Insert(ctx, "u2", model.RoutineInput{TimeAction: "y", RoutineText: "y"})

	deleted, err := repo.Delete(ctx, "u1", r1.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if deleted.ID != r1.ID {
		t.Errorf("deleted snapshot id = %s, want %s", deleted.ID, r1.ID)
	}

	list := repo.ListByUser(ctx, "u1")
	assertContiguous(t, list)
	if got := ids(list); len(got) != 2 || got[0] != r2.ID || got[1] != r3.ID {
		t.Errorf("remaining = %v, want [%s %s]", got, r2.ID, r3.ID)
	}

	others := repo.ListByUser(ctx, "u2")
	if len(others) != 2 || others[0].ID != o1.ID || others[1].ID != o2.ID {
		t.Errorf("other owner's list changed: %v", ids(others))
	}
	assertContiguous(t, others)
}

func TestRoutineNotFoundForOtherOwner(t *testing.T) {
	ctx := context.Background()
	repo := NewRoutineRepository(NewMemoryStore())
	r := repo.Insert(ctx, "u1", model.RoutineInput{TimeAction: "a", RoutineText: "1"})

	text := "stolen"
	if _, err := repo.Update(ctx, "u2", r.ID, model.RoutinePatch{RoutineText: &text}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update by other owner = %v, want ErrNotFound", err)
	}
	if _, err := repo.Delete(ctx, "u2", r.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete by other owner = %v, want ErrNotFound", err)
	}
	if _, err := repo.Delete(ctx, "u1", "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete missing = %v, want ErrNotFound", err)
	}
}

func TestRoutineUpdatePartial(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	created := time.Date(2025, 9, 12, 9, 0, 0, 0, time.UTC)
	store.SetClock(fixedClock(created))
	repo := NewRoutineRepository(store)

	emoji := "💧"
	r := repo.Insert(ctx, "u1", model.RoutineInput{TimeAction: "07:00", RoutineText: "water", Emoji: &emoji})

	later := created.Add(time.Hour)
	store.SetClock(fixedClock(later))
	text := "two glasses"
	updated, err := repo.Update(ctx, "u1", r.ID, model.RoutinePatch{RoutineText: &text})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if updated.RoutineText != text {
		t.Errorf("routineText = %q, want %q", updated.RoutineText, text)
	}
	if updated.TimeAction != "07:00" || updated.Emoji == nil || *updated.Emoji != emoji {
		t.Error("absent fields should be untouched")
	}
	if updated.OrderIndex != r.OrderIndex {
		t.Error("update must not touch orderIndex")
	}
	if !updated.UpdatedAt.Equal(later) || !updated.CreatedAt.Equal(created) {
		t.Errorf("timestamps = %v/%v", updated.CreatedAt, updated.UpdatedAt)
	}
}

func TestRoutineReorder(t *testing.T) {
	ctx := context.Background()
	repo := NewRoutineRepository(NewMemoryStore())
	r1 := repo.Insert(ctx, "u1", model.RoutineInput{TimeAction: "a", RoutineText: "1"})
	r2 := repo.Insert(ctx, "u1", model.RoutineInput{TimeAction: "b", RoutineText: "2"})
	foreign := repo.Insert(ctx, "u2", model.RoutineInput{TimeAction: "x", RoutineText: "x"})

	if err := repo.Reorder(ctx, "u1", []string{r2.ID, r1.ID}); err != nil {
		t.Fatalf("Reorder: %v", err)
	}
	list := repo.ListByUser(ctx, "u1")
	assertContiguous(t, list)
	if list[0].ID != r2.ID || list[1].ID != r1.ID {
		t.Errorf("order = %v, want [%s %s]", ids(list), r2.ID, r1.ID)
	}

	bad := map[string][]string{
		"subset":        {r1.ID},
		"duplicate":     {r1.ID, r1.ID},
		"foreign id":    {r1.ID, foreign.ID},
		"extra id":      {r1.ID, r2.ID, foreign.ID},
		"unknown id":    {r1.ID, "nope"},
		"empty for two": {},
	}
	for name, order := range bad {
		t.Run(name, func(t *testing.T) {
			if err := repo.Reorder(ctx, "u1", order); !errors.Is(err, ErrInvalidOrder) {
				t.Fatalf("Reorder(%v) = %v, want ErrInvalidOrder", order, err)
			}
			after := repo.ListByUser(ctx, "u1")
			if after[0].ID != r2.ID || after[1].ID != r1.ID {
				t.Errorf("rejected reorder changed the list: %v", ids(after))
			}
		})
	}
}

func TestRoutineReorderEmptyOwner(t *testing.T) {
	repo := NewRoutineRepository(NewMemoryStore())
	if err := repo.Reorder(context.Background(), "nobody", nil); err != nil {
		t.Errorf("empty reorder for empty list = %v, want nil", err)
	}
}

func TestRoutineConcurrentMutationsKeepContiguity(t *testing.T) {
	ctx := context.Background()
	repo := NewRoutineRepository(NewMemoryStore())

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 25; i++ {
				r := repo.Insert(ctx, "u1", model.RoutineInput{TimeAction: "t", RoutineText: fmt.Sprintf("%d-%d", w, i)})
				if i%3 == 0 {
					_, _ = repo.Delete(ctx, "u1", r.ID)
				}
				if i%5 == 0 {
					list := repo.ListByUser(ctx, "u1")
					order := ids(list)
					for l, rr := 0, len(order)-1; l < rr; l, rr = l+1, rr-1 {
						order[l], order[rr] = order[rr], order[l]
					}
					// may lose the race against a concurrent insert; that is a clean rejection
					_ = repo.Reorder(ctx, "u1", order)
				}
			}
		}(w)
	}
	wg.Wait()

	list := repo.ListByUser(ctx, "u1")
	assertContiguous(t, list)
	seen := map[int]bool{}
	for _, r := range list {
		if seen[r.OrderIndex] {
			t.Fatalf("duplicate orderIndex %d", r.OrderIndex)
		}
		seen[r.OrderIndex] = true
	}
}
