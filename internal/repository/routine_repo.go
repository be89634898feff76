package repository

import (
	"context"

	"github.com/heishia/bluroutine/internal/model"
)

type RoutineRepository struct {
	store *MemoryStore
}

func NewRoutineRepository(store *MemoryStore) *RoutineRepository {
	return &RoutineRepository{store: store}
}

// ListByUser returns the owner's routines ordered by orderIndex.
func (r *RoutineRepository) ListByUser(ctx context.Context, userID string) []model.Routine {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	return copyRoutines(s.routines.owned(userID))
}

// Insert appends a routine at the end of the owner's list.
func (r *RoutineRepository) Insert(ctx context.Context, userID string, in model.RoutineInput) model.Routine {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	routine := &model.Routine{
		ID:          s.nextID("routine"),
		UserID:      userID,
		TimeAction:  in.TimeAction,
		RoutineText: in.RoutineText,
		Emoji:       in.Emoji,
		OrderIndex:  s.routines.count(userID),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.routines.add(routine)
	s.observe()
	return *routine
}

func (r *RoutineRepository) Update(ctx context.Context, userID, id string, patch model.RoutinePatch) (model.Routine, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	routine, ok := s.routines.find(userID, id)
	if !ok {
		return model.Routine{}, ErrNotFound
	}
	routine.Apply(patch, s.now())
	return *routine, nil
}

// Delete removes the routine and shifts later routines up by one.
// Progress rows of the routine are kept.
func (r *RoutineRepository) Delete(ctx context.Context, userID, id string) (model.Routine, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	removed, ok := s.routines.remove(userID, id)
	if !ok {
		return model.Routine{}, ErrNotFound
	}
	s.observe()
	return *removed, nil
}

func (r *RoutineRepository) Reorder(ctx context.Context, userID string, ids []string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.routines.reorder(userID, ids, s.now())
}

func copyRoutines(in []*model.Routine) []model.Routine {
	out := make([]model.Routine, 0, len(in))
	for _, r := range in {
		out = append(out, *r)
	}
	return out
}
