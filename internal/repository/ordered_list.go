package repository

import (
	"cmp"
	"slices"
	"time"

	"github.com/heishia/bluroutine/internal/model"
)

// orderedList keeps records whose per-owner Index values form 0..n-1.
type orderedList[T model.Ordered] struct {
	items []T
}

// owned returns the owner's records sorted by Index.
func (l *orderedList[T]) owned(owner string) []T {
	var out []T
	for _, it := range l.items {
		if it.OwnerID() == owner {
			out = append(out, it)
		}
	}
	slices.SortStableFunc(out, func(a, b T) int { return cmp.Compare(a.Index(), b.Index()) })
	return out
}

func (l *orderedList[T]) count(owner string) int {
	n := 0
	for _, it := range l.items {
		if it.OwnerID() == owner {
			n++
		}
	}
	return n
}

func (l *orderedList[T]) find(owner, id string) (T, bool) {
	for _, it := range l.items {
		if it.RecordID() == id && it.OwnerID() == owner {
			return it, true
		}
	}
	var zero T
	return zero, false
}

func (l *orderedList[T]) add(item T) {
	l.items = append(l.items, item)
}

// remove deletes the owner's record and closes the gap it leaves.
func (l *orderedList[T]) remove(owner, id string) (T, bool) {
	idx := slices.IndexFunc(l.items, func(it T) bool {
		return it.RecordID() == id && it.OwnerID() == owner
	})
	if idx < 0 {
		var zero T
		return zero, false
	}

	removed := l.items[idx]
	l.items = slices.Delete(l.items, idx, idx+1)

	for _, it := range l.items {
		if it.OwnerID() == owner && it.Index() > removed.Index() {
			it.ShiftDown()
		}
	}
	return removed, true
}

// reorder assigns Index = position in ids. ids must be exactly the owner's
// current id set, each once.
func (l *orderedList[T]) reorder(owner string, ids []string, at time.Time) error {
	owned := l.owned(owner)
	if len(ids) != len(owned) {
		return ErrInvalidOrder
	}

	byID := make(map[string]T, len(owned))
	for _, it := range owned {
		byID[it.RecordID()] = it
	}

	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := byID[id]; !ok {
			return ErrInvalidOrder
		}
		if _, dup := seen[id]; dup {
			return ErrInvalidOrder
		}
		seen[id] = struct{}{}
	}

	for i, id := range ids {
		byID[id].SetIndex(i, at)
	}
	return nil
}
