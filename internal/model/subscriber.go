package model

import "time"

// Subscriber is one newsletter subscription. Email is stored normalized
// (trimmed, lowercased) and is globally unique.
type Subscriber struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	SubscribedAt time.Time `json:"subscribed_at"`
}
