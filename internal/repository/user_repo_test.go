package repository

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/heishia/bluroutine/internal/model"
)

func TestUserCreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(NewMemoryStore())

	u := &model.User{Email: "a@b.com", Name: "A", PasswordHash: "h"}
	if err := repo.CreateUser(ctx, u); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if u.ID == "" || u.Provider != model.ProviderEmail || u.CreatedAt.IsZero() {
		t.Errorf("created user = %+v", u)
	}

	found, err := repo.FindByEmail(ctx, "a@b.com")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if found.ID != u.ID || found.PasswordHash != "h" {
		t.Errorf("found = %+v", found)
	}

	if _, err := repo.FindByEmail(ctx, "A@B.com"); !errors.Is(err, ErrNotFound) {
		t.Errorf("case-different lookup = %v, want ErrNotFound", err)
	}
	if err := repo.CreateUser(ctx, &model.User{Email: "a@b.com"}); !errors.Is(err, ErrEmailExists) {
		t.Errorf("duplicate = %v, want ErrEmailExists", err)
	}
}

func TestUserCreateConcurrentSameEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(NewMemoryStore())

	var ok atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := repo.CreateUser(ctx, &model.User{Email: "race@b.com"}); err == nil {
				ok.Add(1)
			}
		}()
	}
	wg.Wait()

	if ok.Load() != 1 {
		t.Errorf("%d registrations succeeded, want exactly 1", ok.Load())
	}
}

func TestSeedDemoData(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	users := NewUserRepository(store)
	if err := users.CreateUser(ctx, &model.User{Email: "stale@b.com"}); err != nil {
		t.Fatal(err)
	}

	if err := store.SeedDemoData(); err != nil {
		t.Fatalf("SeedDemoData: %v", err)
	}

	if _, err := users.FindByEmail(ctx, "stale@b.com"); !errors.Is(err, ErrNotFound) {
		t.Error("seeding should reset existing users")
	}
	demo, err := users.FindByEmail(ctx, DemoEmail)
	if err != nil {
		t.Fatalf("demo user missing: %v", err)
	}
	if demo.ID != "1" {
		t.Errorf("demo id = %s, want 1", demo.ID)
	}

	routines := NewRoutineRepository(store).ListByUser(ctx, demo.ID)
	activities := NewActivityRepository(store).ListByUser(ctx, demo.ID)
	if len(routines) != 3 || len(activities) != 3 {
		t.Fatalf("seeded %d routines, %d activities; want 3 each", len(routines), len(activities))
	}
	assertContiguous(t, routines)

	// counters restart after the seeded ids
	next := NewRoutineRepository(store).Insert(ctx, demo.ID, model.RoutineInput{TimeAction: "x", RoutineText: "y"})
	if next.ID != "4" || next.OrderIndex != 3 {
		t.Errorf("next routine = id %s index %d, want 4/3", next.ID, next.OrderIndex)
	}
}
