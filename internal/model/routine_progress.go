package model

import "time"

// RoutineProgress is the completion flag of one routine on one calendar day.
// At most one exists per (UserID, RoutineID, Date).
type RoutineProgress struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	RoutineID   string    `json:"routineId"`
	Date        string    `json:"date"`
	IsCompleted bool      `json:"isCompleted"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// RoutineWithProgress is a routine joined with its completion on a given day.
type RoutineWithProgress struct {
	ID          string  `json:"id"`
	TimeAction  string  `json:"timeAction"`
	RoutineText string  `json:"routineText"`
	Emoji       *string `json:"emoji"`
	OrderIndex  int     `json:"orderIndex"`
	IsCompleted bool    `json:"isCompleted"`
}

type DailyProgress struct {
	Date     string                `json:"date"`
	Routines []RoutineWithProgress `json:"routines"`
}

type WeeklyProgress struct {
	StartDate     string          `json:"startDate"`
	EndDate       string          `json:"endDate"`
	DailyProgress []DailyProgress `json:"dailyProgress"`
}
