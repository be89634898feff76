package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/heishia/bluroutine/contracts/mq"
	"github.com/heishia/bluroutine/internal/model"
	"github.com/heishia/bluroutine/internal/repository"
	"github.com/heishia/bluroutine/pkg/metrics"
)

const dateLayout = "2006-01-02"

type ProgressService struct {
	repo   *repository.ProgressRepository
	events EventPublisher
	log    *zap.Logger
}

func NewProgressService(repo *repository.ProgressRepository, events EventPublisher, log *zap.Logger) *ProgressService {
	return &ProgressService{repo: repo, events: events, log: log}
}

// Get returns the raw progress rows of date, including rows whose routine
// has since been deleted.
func (s *ProgressService) Get(ctx context.Context, userID, date string) []model.RoutineProgress {
	return s.repo.ListByDate(ctx, userID, date)
}

// Toggle marks the routine done on date the first time, then flips it.
func (s *ProgressService) Toggle(ctx context.Context, userID, routineID, date string) (model.RoutineProgress, error) {
	p, err := s.repo.Toggle(ctx, userID, routineID, date)
	if err != nil {
		return model.RoutineProgress{}, classifyRecordErr("routine", routineID, err)
	}

	metrics.IncrementMutation("routine_progress", "toggle")
	s.log.Info("routine progress toggled",
		zap.String("user_id", userID),
		zap.String("routine_id", routineID),
		zap.String("date", date),
		zap.Bool("completed", p.IsCompleted),
	)
	publish(s.log, s.events, mq.RoutineProgressToggled, mq.RoutineProgressToggledPayload{
		UserID:      userID,
		RoutineID:   routineID,
		Date:        date,
		IsCompleted: p.IsCompleted,
		OccurredAt:  p.UpdatedAt,
	})
	return p, nil
}

// Daily lists the user's current routines with their completion on date.
func (s *ProgressService) Daily(ctx context.Context, userID, date string) model.DailyProgress {
	return s.repo.Daily(ctx, userID, date)[0]
}

// Weekly returns Daily for the seven days starting at startDate.
func (s *ProgressService) Weekly(ctx context.Context, userID, startDate string) (model.WeeklyProgress, error) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return model.WeeklyProgress{}, fmt.Errorf("invalid start date %q: %w", startDate, ErrBadRequest)
	}

	dates := make([]string, 7)
	for i := range dates {
		dates[i] = start.AddDate(0, 0, i).Format(dateLayout)
	}

	return model.WeeklyProgress{
		StartDate:     startDate,
		EndDate:       dates[6],
		DailyProgress: s.repo.Daily(ctx, userID, dates...),
	}, nil
}
