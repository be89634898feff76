package model

import "time"

type Routine struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	TimeAction  string    `json:"timeAction"`
	RoutineText string    `json:"routineText"`
	Emoji       *string   `json:"emoji"`
	OrderIndex  int       `json:"orderIndex"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type RoutineInput struct {
	TimeAction  string  `json:"timeAction" binding:"required"`
	RoutineText string  `json:"routineText" binding:"required"`
	Emoji       *string `json:"emoji"`
}

// RoutinePatch leaves nil fields untouched.
type RoutinePatch struct {
	TimeAction  *string `json:"timeAction"`
	RoutineText *string `json:"routineText"`
	Emoji       *string `json:"emoji"`
}

func (r *Routine) RecordID() string { return r.ID }
func (r *Routine) OwnerID() string  { return r.UserID }
func (r *Routine) Index() int       { return r.OrderIndex }
func (r *Routine) ShiftDown()       { r.OrderIndex-- }

func (r *Routine) SetIndex(i int, at time.Time) {
	r.OrderIndex = i
	r.UpdatedAt = at
}

func (r *Routine) Apply(p RoutinePatch, at time.Time) {
	if p.TimeAction != nil {
		r.TimeAction = *p.TimeAction
	}
	if p.RoutineText != nil {
		r.RoutineText = *p.RoutineText
	}
	if p.Emoji != nil {
		emoji := *p.Emoji
		r.Emoji = &emoji
	}
	r.UpdatedAt = at
}
