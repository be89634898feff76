package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/heishia/bluroutine/contracts/mq"
	"github.com/heishia/bluroutine/internal/model"
	"github.com/heishia/bluroutine/internal/repository"
	"github.com/heishia/bluroutine/pkg/metrics"
)

type ActivityService struct {
	repo   *repository.ActivityRepository
	events EventPublisher
	log    *zap.Logger
}

func NewActivityService(repo *repository.ActivityRepository, events EventPublisher, log *zap.Logger) *ActivityService {
	return &ActivityService{repo: repo, events: events, log: log}
}

func (s *ActivityService) List(ctx context.Context, userID string) []model.Activity {
	return s.repo.ListByUser(ctx, userID)
}

func (s *ActivityService) Create(ctx context.Context, userID string, in model.ActivityInput) model.Activity {
	a := s.repo.Insert(ctx, userID, in)

	metrics.IncrementMutation("activity", "create")
	s.log.Info("activity created", zap.String("user_id", userID), zap.String("activity_id", a.ID))
	publish(s.log, s.events, mq.ActivityCreated, mq.RecordChangedPayload{
		UserID: userID, RecordID: a.ID, OccurredAt: a.UpdatedAt,
	})
	return a
}

func (s *ActivityService) Update(ctx context.Context, userID, id string, patch model.ActivityPatch) (model.Activity, error) {
	a, err := s.repo.Update(ctx, userID, id, patch)
	if err != nil {
		return model.Activity{}, classifyRecordErr("activity", id, err)
	}

	metrics.IncrementMutation("activity", "update")
	s.log.Info("activity updated", zap.String("user_id", userID), zap.String("activity_id", id))
	publish(s.log, s.events, mq.ActivityUpdated, mq.RecordChangedPayload{
		UserID: userID, RecordID: id, OccurredAt: a.UpdatedAt,
	})
	return a, nil
}

func (s *ActivityService) Delete(ctx context.Context, userID, id string) (model.Activity, error) {
	a, err := s.repo.Delete(ctx, userID, id)
	if err != nil {
		return model.Activity{}, classifyRecordErr("activity", id, err)
	}

	metrics.IncrementMutation("activity", "delete")
	s.log.Info("activity deleted", zap.String("user_id", userID), zap.String("activity_id", id))
	publish(s.log, s.events, mq.ActivityDeleted, mq.RecordChangedPayload{
		UserID: userID, RecordID: id, OccurredAt: time.Now(),
	})
	return a, nil
}

func (s *ActivityService) Reorder(ctx context.Context, userID string, ids []string) error {
	if err := s.repo.Reorder(ctx, userID, ids); err != nil {
		return classifyRecordErr("activity", "", err)
	}

	metrics.IncrementMutation("activity", "reorder")
	s.log.Info("activities reordered", zap.String("user_id", userID), zap.Int("count", len(ids)))
	publish(s.log, s.events, mq.ActivityReordered, mq.ReorderedPayload{
		UserID: userID, OrderedIDs: ids, OccurredAt: time.Now(),
	})
	return nil
}
