package model

import "time"

type Activity struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	Name       string    `json:"name"`
	Color      string    `json:"color"` // display token, e.g. "bg-blue-200"
	OrderIndex int       `json:"orderIndex"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type ActivityInput struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color" binding:"required"`
}

type ActivityPatch struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}

func (a *Activity) RecordID() string { return a.ID }
func (a *Activity) OwnerID() string  { return a.UserID }
func (a *Activity) Index() int       { return a.OrderIndex }
func (a *Activity) ShiftDown()       { a.OrderIndex-- }

func (a *Activity) SetIndex(i int, at time.Time) {
	a.OrderIndex = i
	a.UpdatedAt = at
}

func (a *Activity) Apply(p ActivityPatch, at time.Time) {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Color != nil {
		a.Color = *p.Color
	}
	a.UpdatedAt = at
}
