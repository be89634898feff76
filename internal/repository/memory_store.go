package repository

import (
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/heishia/bluroutine/internal/model"
	"github.com/heishia/bluroutine/pkg/metrics"
)

var (
	ErrNotFound     = errors.New("record not found")
	ErrEmailExists  = errors.New("email already exists")
	ErrInvalidOrder = errors.New("ordered ids do not match the owner's records")
)

// MemoryStore holds every collection of the service in process memory.
// A single RWMutex guards all of them; repositories take it for the whole
// of each operation so check-then-act sequences stay atomic.
type MemoryStore struct {
	mu sync.RWMutex

	users      []*model.User
	routines   orderedList[*model.Routine]
	activities orderedList[*model.Activity]
	progress   []*model.RoutineProgress
	sessions   []*model.DaySession

	seq map[string]int
	now func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		seq: make(map[string]int),
		now: time.Now,
	}
}

// SetClock replaces the time source. Tests only.
func (s *MemoryStore) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// nextID returns the next decimal id of a collection. Caller holds s.mu.
func (s *MemoryStore) nextID(collection string) string {
	s.seq[collection]++
	return strconv.Itoa(s.seq[collection])
}

// observe publishes collection sizes. Caller holds s.mu.
func (s *MemoryStore) observe() {
	metrics.SetStoreRecords("user", len(s.users))
	metrics.SetStoreRecords("routine", len(s.routines.items))
	metrics.SetStoreRecords("activity", len(s.activities.items))
	metrics.SetStoreRecords("routine_progress", len(s.progress))
	metrics.SetStoreRecords("day_session", len(s.sessions))
}
