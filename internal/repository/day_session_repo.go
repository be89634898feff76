package repository

import (
	"context"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/heishia/bluroutine/internal/model"
)

type DaySessionRepository struct {
	store *MemoryStore
}

func NewDaySessionRepository(store *MemoryStore) *DaySessionRepository {
	return &DaySessionRepository{store: store}
}

// ListByDate returns the owner's sessions of date sorted by start_time
// (plain string comparison).
func (r *DaySessionRepository) ListByDate(ctx context.Context, userID, date string) []model.DaySession {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []model.DaySession{}
	for _, sess := range s.sessions {
		if sess.UserID == userID && sess.Date == date {
			out = append(out, *sess)
		}
	}
	sortByStartTime(out)
	return out
}

// Insert stores sess under a fresh uuid with both timestamps set to now.
func (r *DaySessionRepository) Insert(ctx context.Context, userID string, sess model.DaySession) model.DaySession {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := s.stamp(userID, sess)
	s.sessions = append(s.sessions, stored)
	s.observe()
	return *stored
}

func (r *DaySessionRepository) Update(ctx context.Context, userID, id string, patch model.DaySessionPatch) (model.DaySession, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sess := range s.sessions {
		if sess.ID == id && sess.UserID == userID {
			sess.Apply(patch, s.now())
			return *sess, nil
		}
	}
	return model.DaySession{}, ErrNotFound
}

func (r *DaySessionRepository) Delete(ctx context.Context, userID, id string) (model.DaySession, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.sessions, func(sess *model.DaySession) bool {
		return sess.ID == id && sess.UserID == userID
	})
	if idx < 0 {
		return model.DaySession{}, ErrNotFound
	}
	removed := s.sessions[idx]
	s.sessions = slices.Delete(s.sessions, idx, idx+1)
	s.observe()
	return *removed, nil
}

// ReplaceDay swaps every session of (userID, date) for replacements in one
// step. The replacements are fully built before the old ones are dropped.
// It returns the new sessions sorted by start_time and the number removed.
func (r *DaySessionRepository) ReplaceDay(ctx context.Context, userID, date string, replacements []model.DaySession) ([]model.DaySession, int) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	staged := make([]*model.DaySession, 0, len(replacements))
	for _, sess := range replacements {
		sess.Date = date
		staged = append(staged, s.stamp(userID, sess))
	}

	kept := make([]*model.DaySession, 0, len(s.sessions)+len(staged))
	removed := 0
	for _, sess := range s.sessions {
		if sess.UserID == userID && sess.Date == date {
			removed++
			continue
		}
		kept = append(kept, sess)
	}
	s.sessions = append(kept, staged...)
	s.observe()

	out := make([]model.DaySession, 0, len(staged))
	for _, sess := range staged {
		out = append(out, *sess)
	}
	sortByStartTime(out)
	return out, removed
}

// stamp assigns identity and timestamps. Caller holds s.mu.
func (s *MemoryStore) stamp(userID string, sess model.DaySession) *model.DaySession {
	now := s.now()
	sess.ID = uuid.NewString()
	sess.UserID = userID
	sess.CreatedAt = now
	sess.UpdatedAt = now
	return &sess
}

func sortByStartTime(sessions []model.DaySession) {
	slices.SortStableFunc(sessions, func(a, b model.DaySession) int {
		return strings.Compare(a.StartTime, b.StartTime)
	})
}
