package domain

import "time"

// Contact is a person who can submit tickets and post messages.
type Contact struct {
	ID        string
	Email     string
	Name      string
	Phone     *int64
	CreatedAt time.Time
}
