package repository

import (
	"context"

	"github.com/heishia/bluroutine/internal/model"
)

type ProgressRepository struct {
	store *MemoryStore
}

func NewProgressRepository(store *MemoryStore) *ProgressRepository {
	return &ProgressRepository{store: store}
}

// ListByDate returns the owner's progress rows for date in insertion order.
// Rows of deleted routines are included.
func (r *ProgressRepository) ListByDate(ctx context.Context, userID, date string) []model.RoutineProgress {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []model.RoutineProgress{}
	for _, p := range s.progress {
		if p.UserID == userID && p.Date == date {
			out = append(out, *p)
		}
	}
	return out
}

// Toggle flips the row for (userID, routineID, date), creating it as
// completed on first use. The routine must belong to userID.
func (r *ProgressRepository) Toggle(ctx context.Context, userID, routineID, date string) (model.RoutineProgress, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.routines.find(userID, routineID); !ok {
		return model.RoutineProgress{}, ErrNotFound
	}

	now := s.now()
	for _, p := range s.progress {
		if p.UserID == userID && p.RoutineID == routineID && p.Date == date {
			p.IsCompleted = !p.IsCompleted
			p.UpdatedAt = now
			return *p, nil
		}
	}

	p := &model.RoutineProgress{
		ID:          s.nextID("routine_progress"),
		UserID:      userID,
		RoutineID:   routineID,
		Date:        date,
		IsCompleted: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.progress = append(s.progress, p)
	s.observe()
	return *p, nil
}

// Daily joins the owner's current routines with their completion on each of
// dates. Progress rows without a live routine are not surfaced.
func (r *ProgressRepository) Daily(ctx context.Context, userID string, dates ...string) []model.DailyProgress {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	routines := s.routines.owned(userID)

	completed := make(map[string]map[string]bool, len(dates))
	for _, d := range dates {
		completed[d] = make(map[string]bool)
	}
	for _, p := range s.progress {
		if p.UserID != userID {
			continue
		}
		if byRoutine, ok := completed[p.Date]; ok {
			byRoutine[p.RoutineID] = p.IsCompleted
		}
	}

	out := make([]model.DailyProgress, 0, len(dates))
	for _, d := range dates {
		day := model.DailyProgress{Date: d, Routines: make([]model.RoutineWithProgress, 0, len(routines))}
		for _, rt := range routines {
			day.Routines = append(day.Routines, model.RoutineWithProgress{
				ID:          rt.ID,
				TimeAction:  rt.TimeAction,
				RoutineText: rt.RoutineText,
				Emoji:       rt.Emoji,
				OrderIndex:  rt.OrderIndex,
				IsCompleted: completed[d][rt.ID],
			})
		}
		out = append(out, day)
	}
	return out
}
