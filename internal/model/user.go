package model

import "time"

const ProviderEmail = "email"

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Provider     string    `json:"provider"`
	CreatedAt    time.Time `json:"createdAt"`
}
