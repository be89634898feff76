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

type DaySessionService struct {
	repo   *repository.DaySessionRepository
	events EventPublisher
	log    *zap.Logger
}

func NewDaySessionService(repo *repository.DaySessionRepository, events EventPublisher, log *zap.Logger) *DaySessionService {
	return &DaySessionService{repo: repo, events: events, log: log}
}

// List returns the sessions of date ordered by start_time.
func (s *DaySessionService) List(ctx context.Context, userID, date string) []model.DaySession {
	return s.repo.ListByDate(ctx, userID, date)
}

// Create stores a new session. Validation failures are returned wrapping
// model.ErrInvalidSession, not ErrBadRequest.
func (s *DaySessionService) Create(ctx context.Context, userID string, in model.DaySessionInput) (model.DaySession, error) {
	if err := in.Validate(); err != nil {
		return model.DaySession{}, err
	}

	sess := s.repo.Insert(ctx, userID, in.NewSession())

	metrics.IncrementMutation("day_session", "create")
	s.log.Info("day session created",
		zap.String("user_id", userID),
		zap.String("session_id", sess.ID),
		zap.String("status", string(sess.Status)),
	)
	publish(s.log, s.events, mq.DaySessionCreated, mq.RecordChangedPayload{
		UserID: userID, RecordID: sess.ID, OccurredAt: sess.CreatedAt,
	})
	return sess, nil
}

// Update applies the fields present in patch. Status changes are not
// checked against the previous status.
func (s *DaySessionService) Update(ctx context.Context, userID, id string, patch model.DaySessionPatch) (model.DaySession, error) {
	if err := patch.Validate(); err != nil {
		return model.DaySession{}, fmt.Errorf("%v: %w", err, ErrBadRequest)
	}

	sess, err := s.repo.Update(ctx, userID, id, patch)
	if err != nil {
		return model.DaySession{}, classifyRecordErr("day session", id, err)
	}

	metrics.IncrementMutation("day_session", "update")
	s.log.Info("day session updated",
		zap.String("user_id", userID),
		zap.String("session_id", id),
		zap.String("status", string(sess.Status)),
	)
	publish(s.log, s.events, mq.DaySessionUpdated, mq.RecordChangedPayload{
		UserID: userID, RecordID: id, OccurredAt: sess.UpdatedAt,
	})
	return sess, nil
}

func (s *DaySessionService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.repo.Delete(ctx, userID, id); err != nil {
		return classifyRecordErr("day session", id, err)
	}

	metrics.IncrementMutation("day_session", "delete")
	s.log.Info("day session deleted", zap.String("user_id", userID), zap.String("session_id", id))
	publish(s.log, s.events, mq.DaySessionDeleted, mq.RecordChangedPayload{
		UserID: userID, RecordID: id, OccurredAt: time.Now(),
	})
	return nil
}

// ReplaceDay drops every session of date and stores entries as new
// sessions of that date. All entries are validated before anything changes.
func (s *DaySessionService) ReplaceDay(ctx context.Context, userID, date string, entries []model.DaySessionInput) ([]model.DaySession, error) {
	replacements := make([]model.DaySession, 0, len(entries))
	for i, in := range entries {
		in.Date = date
		if err := in.Validate(); err != nil {
			return nil, fmt.Errorf("session %d: %v: %w", i, err, ErrBadRequest)
		}
		replacements = append(replacements, in.NewSession())
	}

	created, removed := s.repo.ReplaceDay(ctx, userID, date, replacements)

	ids := make([]string, 0, len(created))
	for _, sess := range created {
		ids = append(ids, sess.ID)
	}

	metrics.IncrementMutation("day_session", "replace_day")
	s.log.Info("day sessions replaced",
		zap.String("user_id", userID),
		zap.String("date", date),
		zap.Int("removed", removed),
		zap.Int("created", len(created)),
	)
	publish(s.log, s.events, mq.DaySessionDayReset, mq.DayReplacedPayload{
		UserID:       userID,
		Date:         date,
		RemovedCount: removed,
		SessionIDs:   ids,
		OccurredAt:   time.Now(),
	})
	return created, nil
}
