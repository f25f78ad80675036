package domain

import "time"

// Timestamps holds the standard audit columns every entity carries.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
