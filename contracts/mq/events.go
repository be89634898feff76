package mq

import "time"

// Routing keys published on the events exchange.
const (
	UserRegistered = "user.registered"

	RoutineCreated   = "routine.created"
	RoutineUpdated   = "routine.updated"
	RoutineDeleted   = "routine.deleted"
	RoutineReordered = "routine.reordered"

	ActivityCreated   = "activity.created"
	ActivityUpdated   = "activity.updated"
	ActivityDeleted   = "activity.deleted"
	ActivityReordered = "activity.reordered"

	RoutineProgressToggled = "routine_progress.toggled"

	DaySessionCreated  = "day_session.created"
	DaySessionUpdated  = "day_session.updated"
	DaySessionDeleted  = "day_session.deleted"
	DaySessionDayReset = "day_session.day_replaced"
)

type UserRegisteredPayload struct {
	UserID     string    `json:"user_id"`
	Email      string    `json:"email"`
	OccurredAt time.Time `json:"occurred_at"`
}

// RecordChangedPayload covers create/update/delete of a single owned record.
type RecordChangedPayload struct {
	UserID     string    `json:"user_id"`
	RecordID   string    `json:"record_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

type ReorderedPayload struct {
	UserID     string    `json:"user_id"`
	OrderedIDs []string  `json:"ordered_ids"`
	OccurredAt time.Time `json:"occurred_at"`
}

type RoutineProgressToggledPayload struct {
	UserID      string    `json:"user_id"`
	RoutineID   string    `json:"routine_id"`
	Date        string    `json:"date"`
	IsCompleted bool      `json:"is_completed"`
	OccurredAt  time.Time `json:"occurred_at"`
}

type DayReplacedPayload struct {
	UserID       string    `json:"user_id"`
	Date         string    `json:"date"`
	RemovedCount int       `json:"removed_count"`
	SessionIDs   []string  `json:"session_ids"`
	OccurredAt   time.Time `json:"occurred_at"`
}
