package entity

import (
	"time"
)

type User struct {
	ID              string    `json:"id" firestore:"id"`
	Name            string    `json:"name" firestore:"name"`
	Email           string    `json:"email" firestore:"email"`
	Password        string    `json:"-" firestore:"password"`
	WalletAddress   string    `json:"wallet_address,omitempty" firestore:"walletAddress,omitempty"`
	Zipcode         string    `json:"zipcode,omitempty" firestore:"zipcode,omitempty"`
	SavedListingIDs []string  `json:"saved_listing_ids" firestore:"savedListingIds"`
	ProfileImageID  string    `json:"profile_image_id,omitempty" firestore:"profileImageId,omitempty"`
	CreatedAt       time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt       time.Time `json:"updated_at" firestore:"updatedAt"`
}
