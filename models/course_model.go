package models

import (
	"time"

	"github.com/google/uuid"
)

// Course is immutable reference data owned by the catalog. It is loaded
// once at startup and never mutated afterwards.
type Course struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	Duration    int       `json:"duration"` // years
	Fees        float64   `json:"fees"`
	Department  string    `json:"department"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
}
