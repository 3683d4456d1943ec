package entity

import "time"

// Message is a one-shot note between exactly two participants.
// CreatedAt is immutable; there is no edit surface.
type Message struct {
	ID           string    `json:"id" firestore:"id"`
	SenderID     string    `json:"sender_id" firestore:"senderId"`
	Participants []string  `json:"participants" firestore:"participants"`
	Content      string    `json:"content" firestore:"content"`
	CreatedAt    time.Time `json:"created_at" firestore:"createdAt"`
}
