package entity

import (
	"time"
)

type GeoPoint struct {
	Lat float64 `json:"lat" firestore:"lat"`
	Lng float64 `json:"lng" firestore:"lng"`
}

type Listing struct {
	ID              string    `json:"id" firestore:"id"`
	Title           string    `json:"title" firestore:"title"`
	Description     string    `json:"description,omitempty" firestore:"description,omitempty"`
	Address         string    `json:"address" firestore:"address"`
	Location        *GeoPoint `json:"location,omitempty" firestore:"location,omitempty"`
	Rent            float64   `json:"rent" firestore:"rent"`
	SecurityDeposit *float64  `json:"security_deposit,omitempty" firestore:"securityDeposit,omitempty"`
	StartDate       time.Time `json:"start_date" firestore:"startDate"`
	EndDate         time.Time `json:"end_date" firestore:"endDate"`
	Capacity        int       `json:"capacity" firestore:"capacity"`
	Website         string    `json:"website,omitempty" firestore:"website,omitempty"`
	OwnerID         string    `json:"owner_id" firestore:"ownerId"`
	ImageIDs        []string  `json:"image_ids" firestore:"imageIds"`
	CreatedAt       time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt       time.Time `json:"updated_at" firestore:"updatedAt"`
}

// Contains reports whether [start, end] falls entirely within the
// listing's availability window.
func (l *Listing) Contains(start, end time.Time) bool {
	return !start.Before(l.StartDate) && !end.After(l.EndDate)
}
