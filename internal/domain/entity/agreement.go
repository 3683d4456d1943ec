package entity

import (
	"time"
)

const (
	PayTermMonthly = "monthly"
	PayTermWeekly  = "weekly"
	PayTermOneTime = "one_time"
)

type Agreement struct {
	ID              string     `json:"id" firestore:"id"`
	ListingID       string     `json:"listing_id" firestore:"listingId"`
	OwnerID         string     `json:"owner_id" firestore:"ownerId"`
	TenantID        string     `json:"tenant_id" firestore:"tenantId"`
	StartDate       time.Time  `json:"start_date" firestore:"startDate"`
	EndDate         time.Time  `json:"end_date" firestore:"endDate"`
	Rent            float64    `json:"rent" firestore:"rent"`
	SecurityDeposit float64    `json:"security_deposit" firestore:"securityDeposit"`
	NumPeople       int        `json:"num_people" firestore:"numPeople"`
	PayTerm         string     `json:"pay_term" firestore:"payTerm"`
	OwnerSignedAt   *time.Time `json:"owner_signed_at,omitempty" firestore:"ownerSignedAt,omitempty"`
	TenantSignedAt  *time.Time `json:"tenant_signed_at,omitempty" firestore:"tenantSignedAt,omitempty"`
	CreatedAt       time.Time  `json:"created_at" firestore:"createdAt"`
	UpdatedAt       time.Time  `json:"updated_at" firestore:"updatedAt"`
}

func (a *Agreement) OwnerSigned() bool {
	return a.OwnerSignedAt != nil
}

func (a *Agreement) TenantSigned() bool {
	return a.TenantSignedAt != nil
}

// FullySigned is derived from the two sign timestamps, never stored.
func (a *Agreement) FullySigned() bool {
	return a.OwnerSigned() && a.TenantSigned()
}

// Overlaps reports whether the agreement's closed date interval
// intersects [start, end]. Boundary touching counts as overlap, so
// back-to-back leases sharing a date conflict.
func (a *Agreement) Overlaps(start, end time.Time) bool {
	return !a.StartDate.After(end) && !start.After(a.EndDate)
}
