package model

import "time"

// ContactMessage represents a message submitted via the contact form.
// Records are immutable once created; repeat submissions from the same
// email are all retained.
type ContactMessage struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Subject     string    `json:"subject"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// ListOptions carries pagination parameters for admin listings.
type ListOptions struct {
	Limit  int
	Offset int
}
