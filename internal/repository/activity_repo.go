package repository

import (
	"context"

	"github.com/heishia/bluroutine/internal/model"
)

type ActivityRepository struct {
	store *MemoryStore
}

func NewActivityRepository(store *MemoryStore) *ActivityRepository {
	return &ActivityRepository{store: store}
}

func (r *ActivityRepository) ListByUser(ctx context.Context, userID string) []model.Activity {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	owned := s.activities.owned(userID)
	out := make([]model.Activity, 0, len(owned))
	for _, a := range owned {
		out = append(out, *a)
	}
	return out
}

func (r *ActivityRepository) Insert(ctx context.Context, userID string, in model.ActivityInput) model.Activity {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	activity := &model.Activity{
		ID:         s.nextID("activity"),
		UserID:     userID,
		Name:       in.Name,
		Color:      in.Color,
		OrderIndex: s.activities.count(userID),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.activities.add(activity)
	s.observe()
	return *activity
}

func (r *ActivityRepository) Update(ctx context.Context, userID, id string, patch model.ActivityPatch) (model.Activity, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.activities.find(userID, id)
	if !ok {
		return model.Activity{}, ErrNotFound
	}
	activity.Apply(patch, s.now())
	return *activity, nil
}

func (r *ActivityRepository) Delete(ctx context.Context, userID, id string) (model.Activity, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	removed, ok := s.activities.remove(userID, id)
	if !ok {
		return model.Activity{}, ErrNotFound
	}
	s.observe()
	return *removed, nil
}

func (r *ActivityRepository) Reorder(ctx context.Context, userID string, ids []string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.activities.reorder(userID, ids, s.now())
}
