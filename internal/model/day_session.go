package model

import (
	"errors"
	"fmt"
	"time"
)

// SessionStatus is the free-form state label of a day session. Any status may
// follow any other; only membership in the set is checked.
type SessionStatus string

const (
	StatusReady        SessionStatus = "ready"
	StatusStarted      SessionStatus = "started"
	StatusCompleted    SessionStatus = "completed"
	StatusResting      SessionStatus = "resting"
	StatusRestFinished SessionStatus = "rest_finished"
	StatusFinished     SessionStatus = "finished"
)

var sessionStatuses = []SessionStatus{
	StatusReady, StatusStarted, StatusCompleted, StatusResting, StatusRestFinished, StatusFinished,
}

func (s SessionStatus) Valid() bool {
	for _, v := range sessionStatuses {
		if s == v {
			return true
		}
	}
	return false
}

var ErrInvalidSession = errors.New("invalid day session")

type DaySession struct {
	ID          string        `json:"id"`
	UserID      string        `json:"user_id"`
	Date        string        `json:"date"`
	StartTime   string        `json:"start_time"`
	EndTime     *string       `json:"end_time"`
	Action      *string       `json:"action"`
	Status      SessionStatus `json:"status"`
	IsRest      bool          `json:"is_rest"`
	IsNewAction bool          `json:"is_new_action"`
	SetNumber   *int          `json:"set_number"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// DaySessionInput is the client-supplied part of a new session.
type DaySessionInput struct {
	Date        string         `json:"date"`
	StartTime   string         `json:"start_time"`
	EndTime     *string        `json:"end_time"`
	Action      *string        `json:"action"`
	Status      *SessionStatus `json:"status"`
	IsRest      *bool          `json:"is_rest"`
	IsNewAction *bool          `json:"is_new_action"`
	SetNumber   *int           `json:"set_number"`
}

// Validate checks required fields and the status value.
func (in DaySessionInput) Validate() error {
	if in.Date == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidSession)
	}
	if in.StartTime == "" {
		return fmt.Errorf("%w: start_time is required", ErrInvalidSession)
	}
	if in.Status != nil && !in.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidSession, *in.Status)
	}
	return nil
}

// NewSession builds a session from in with defaults applied (status ready,
// flags false). Identity and timestamps are left to the caller.
func (in DaySessionInput) NewSession() DaySession {
	s := DaySession{
		Date:      in.Date,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		Action:    in.Action,
		Status:    StatusReady,
		SetNumber: in.SetNumber,
	}
	if in.Status != nil {
		s.Status = *in.Status
	}
	if in.IsRest != nil {
		s.IsRest = *in.IsRest
	}
	if in.IsNewAction != nil {
		s.IsNewAction = *in.IsNewAction
	}
	return s
}

// DaySessionPatch overwrites only the fields present in the request body.
// An explicit null clears end_time, action and set_number; it is ignored for
// the other fields.
type DaySessionPatch struct {
	StartTime   Optional[string]        `json:"start_time"`
	EndTime     Optional[string]        `json:"end_time"`
	Action      Optional[string]        `json:"action"`
	Status      Optional[SessionStatus] `json:"status"`
	IsRest      Optional[bool]          `json:"is_rest"`
	IsNewAction Optional[bool]          `json:"is_new_action"`
	SetNumber   Optional[int]           `json:"set_number"`
}

func (p DaySessionPatch) Validate() error {
	if p.Status.present() && !p.Status.Value.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidSession, p.Status.Value)
	}
	return nil
}

func (s *DaySession) Apply(p DaySessionPatch, at time.Time) {
	if p.StartTime.present() {
		s.StartTime = p.StartTime.Value
	}
	applyNullable(&s.EndTime, p.EndTime)
	applyNullable(&s.Action, p.Action)
	if p.Status.present() {
		s.Status = p.Status.Value
	}
	if p.IsRest.present() {
		s.IsRest = p.IsRest.Value
	}
	if p.IsNewAction.present() {
		s.IsNewAction = p.IsNewAction.Value
	}
	applyNullable(&s.SetNumber, p.SetNumber)
	s.UpdatedAt = at
}
