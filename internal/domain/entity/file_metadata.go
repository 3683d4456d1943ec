package entity

import "time"

const (
	FileOwnerTypeUser    = "user"
	FileOwnerTypeListing = "listing"
)

// FileMetadata records an uploaded object. Each file belongs to exactly
// one parent (a user profile or a listing gallery) at a time.
type FileMetadata struct {
	ID        string    `json:"id" firestore:"id"`
	URL       string    `json:"url" firestore:"url"`
	Filename  string    `json:"filename" firestore:"filename"`
	MimeType  string    `json:"mime_type" firestore:"mimeType"`
	OwnerType string    `json:"owner_type" firestore:"ownerType"`
	OwnerID   string    `json:"owner_id" firestore:"ownerId"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
