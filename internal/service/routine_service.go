package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/heishia/bluroutine/contracts/mq"
	"github.com/heishia/bluroutine/internal/model"
	"github.com/heishia/bluroutine/internal/repository"
	"github.com/heishia/bluroutine/pkg/metrics"
)

type RoutineService struct {
	repo   *repository.RoutineRepository
	events EventPublisher
	log    *zap.Logger
}

func NewRoutineService(repo *repository.RoutineRepository, events EventPublisher, log *zap.Logger) *RoutineService {
	return &RoutineService{repo: repo, events: events, log: log}
}

func (s *RoutineService) List(ctx context.Context, userID string) []model.Routine {
	return s.repo.ListByUser(ctx, userID)
}

// Create appends a routine to the end of the user's list.
func (s *RoutineService) Create(ctx context.Context, userID string, in model.RoutineInput) model.Routine {
	r := s.repo.Insert(ctx, userID, in)

	metrics.IncrementMutation("routine", "create")
	s.log.Info("routine created", zap.String("user_id", userID), zap.String("routine_id", r.ID))
	publish(s.log, s.events, mq.RoutineCreated, mq.RecordChangedPayload{
		UserID: userID, RecordID: r.ID, OccurredAt: r.UpdatedAt,
	})
	return r
}

func (s *RoutineService) Update(ctx context.Context, userID, id string, patch model.RoutinePatch) (model.Routine, error) {
	r, err := s.repo.Update(ctx, userID, id, patch)
	if err != nil {
		return model.Routine{}, classifyRecordErr("routine", id, err)
	}

	metrics.IncrementMutation("routine", "update")
	s.log.Info("routine updated", zap.String("user_id", userID), zap.String("routine_id", id))
	publish(s.log, s.events, mq.RoutineUpdated, mq.RecordChangedPayload{
		UserID: userID, RecordID: id, OccurredAt: r.UpdatedAt,
	})
	return r, nil
}

// Delete removes the routine and closes the gap in orderIndex. Progress rows
// of the routine are left in place.
func (s *RoutineService) Delete(ctx context.Context, userID, id string) (model.Routine, error) {
	r, err := s.repo.Delete(ctx, userID, id)
	if err != nil {
		return model.Routine{}, classifyRecordErr("routine", id, err)
	}

	metrics.IncrementMutation("routine", "delete")
	s.log.Info("routine deleted", zap.String("user_id", userID), zap.String("routine_id", id))
	publish(s.log, s.events, mq.RoutineDeleted, mq.RecordChangedPayload{
		UserID: userID, RecordID: id, OccurredAt: time.Now(),
	})
	return r, nil
}

// Reorder sets orderIndex to each id's position. ids must be exactly the
// user's routine ids.
func (s *RoutineService) Reorder(ctx context.Context, userID string, ids []string) error {
	if err := s.repo.Reorder(ctx, userID, ids); err != nil {
		return classifyRecordErr("routine", "", err)
	}

	metrics.IncrementMutation("routine", "reorder")
	s.log.Info("routines reordered", zap.String("user_id", userID), zap.Int("count", len(ids)))
	publish(s.log, s.events, mq.RoutineReordered, mq.ReorderedPayload{
		UserID: userID, OrderedIDs: ids, OccurredAt: time.Now(),
	})
	return nil
}

// classifyRecordErr maps repository errors onto the service taxonomy.
func classifyRecordErr(entity, id string, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return fmt.Errorf("%s %s: %w", entity, id, ErrNotFound)
	case errors.Is(err, repository.ErrInvalidOrder):
		return fmt.Errorf("%s order: %w", entity, ErrBadRequest)
	default:
		return err
	}
}
