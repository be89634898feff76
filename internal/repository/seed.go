package repository

import (
	"fmt"
	"time"

	"github.com/heishia/bluroutine/internal/model"
	"github.com/heishia/bluroutine/pkg/util"
)

const (
	DemoEmail    = "test@bluroutine.com"
	DemoPassword = "test123"
)

// SeedDemoData resets the store to a fixed demo account with three routines
// and three activities (ids "1".."3" each).
func (s *MemoryStore) SeedDemoData() error {
	hash, err := util.HashPassword(DemoPassword)
	if err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = nil
	s.routines = orderedList[*model.Routine]{}
	s.activities = orderedList[*model.Activity]{}
	s.progress = nil
	s.sessions = nil
	s.seq = make(map[string]int)

	at := time.Date(2025, 9, 13, 0, 0, 0, 0, time.UTC)
	userID := s.nextID("user")
	s.users = append(s.users, &model.User{
		ID:           userID,
		Email:        DemoEmail,
		PasswordHash: hash,
		Name:         "테스트 사용자",
		Provider:     model.ProviderEmail,
		CreatedAt:    at,
	})

	routines := []struct{ timeAction, text, emoji string }{
		{"07:00", "물 한잔 마시기", "💧"},
		{"오전", "아침 운동하기", "💪"},
		{"저녁", "독서하기", "📚"},
	}
	for i, rt := range routines {
		emoji := rt.emoji
		s.routines.add(&model.Routine{
			ID:          s.nextID("routine"),
			UserID:      userID,
			TimeAction:  rt.timeAction,
			RoutineText: rt.text,
			Emoji:       &emoji,
			OrderIndex:  i,
			CreatedAt:   at,
			UpdatedAt:   at,
		})
	}

	activities := []struct{ name, color string }{
		{"운동", "bg-blue-200"},
		{"독서", "bg-green-200"},
		{"공부", "bg-purple-200"},
	}
	for i, a := range activities {
		s.activities.add(&model.Activity{
			ID:         s.nextID("activity"),
			UserID:     userID,
			Name:       a.name,
			Color:      a.color,
			OrderIndex: i,
			CreatedAt:  at,
			UpdatedAt:  at,
		})
	}

	s.observe()
	return nil
}
