package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"subleasehub/internal/domain/entity"
	"subleasehub/pkg/errors"
)

// In-memory repository fakes. The agreement fake runs its overlap scan
// under a mutex, matching the serializable transaction the Firestore
// implementation uses.

type fakeListingRepo struct {
	mu       sync.Mutex
	listings map[string]*entity.Listing
	seq      int
}

func newFakeListingRepo() *fakeListingRepo {
	return &fakeListingRepo{listings: make(map[string]*entity.Listing)}
}

func (r *fakeListingRepo) Create(ctx context.Context, listing *entity.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if listing.ID == "" {
		r.seq++
		listing.ID = fmt.Sprintf("listing-%d", r.seq)
	}
	listing.CreatedAt = time.Now()
	r.listings[listing.ID] = listing
	return nil
}

func (r *fakeListingRepo) GetByID(ctx context.Context, id string) (*entity.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	listing, ok := r.listings[id]
	if !ok {
		return nil, errors.NotFound("Listing", nil)
	}
	copied := *listing
	return &copied, nil
}

func (r *fakeListingRepo) List(ctx context.Context, filter map[string]interface{}, from, to *time.Time, limit, offset int) ([]*entity.Listing, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Listing
	for _, l := range r.listings {
		if owner, ok := filter["ownerId"]; ok && l.OwnerID != owner {
			continue
		}
		if from != nil && l.EndDate.Before(*from) {
			continue
		}
		if to != nil && l.StartDate.After(*to) {
			continue
		}
		copied := *l
		out = append(out, &copied)
	}
	return out, int64(len(out)), nil
}

func (r *fakeListingRepo) Update(ctx context.Context, listing *entity.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.listings[listing.ID]; !ok {
		return errors.NotFound("Listing", nil)
	}
	r.listings[listing.ID] = listing
	return nil
}

func (r *fakeListingRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.listings, id)
	return nil
}

func (r *fakeListingRepo) AddImage(ctx context.Context, listingID, imageID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	listing, ok := r.listings[listingID]
	if !ok {
		return errors.NotFound("Listing", nil)
	}
	listing.ImageIDs = append(listing.ImageIDs, imageID)
	return nil
}

type fakeAgreementRepo struct {
	mu         sync.Mutex
	agreements map[string]*entity.Agreement
	seq        int
}

func newFakeAgreementRepo() *fakeAgreementRepo {
	return &fakeAgreementRepo{agreements: make(map[string]*entity.Agreement)}
}

func (r *fakeAgreementRepo) CreateIfAvailable(ctx context.Context, agreement *entity.Agreement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.agreements {
		if existing.ListingID == agreement.ListingID && existing.Overlaps(agreement.StartDate, agreement.EndDate) {
			return errors.Conflict("Listing is already booked for the requested dates", nil)
		}
	}
	if agreement.ID == "" {
		r.seq++
		agreement.ID = fmt.Sprintf("agreement-%d", r.seq)
	}
	agreement.CreatedAt = time.Now()
	copied := *agreement
	r.agreements[agreement.ID] = &copied
	return nil
}

func (r *fakeAgreementRepo) GetByID(ctx context.Context, id string) (*entity.Agreement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	agreement, ok := r.agreements[id]
	if !ok {
		return nil, errors.NotFound("Agreement", nil)
	}
	copied := *agreement
	return &copied, nil
}

func (r *fakeAgreementRepo) List(ctx context.Context, filter map[string]interface{}, from, to *time.Time, limit, offset int) ([]*entity.Agreement, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Agreement
	for _, a := range r.agreements {
		if owner, ok := filter["ownerId"]; ok && a.OwnerID != owner {
			continue
		}
		if tenant, ok := filter["tenantId"]; ok && a.TenantID != tenant {
			continue
		}
		if listing, ok := filter["listingId"]; ok && a.ListingID != listing {
			continue
		}
		if from != nil && a.EndDate.Before(*from) {
			continue
		}
		if to != nil && a.StartDate.After(*to) {
			continue
		}
		copied := *a
		out = append(out, &copied)
	}
	return out, int64(len(out)), nil
}

func (r *fakeAgreementRepo) ListByListingID(ctx context.Context, listingID string) ([]*entity.Agreement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Agreement
	for _, a := range r.agreements {
		if a.ListingID == listingID {
			copied := *a
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeAgreementRepo) Sign(ctx context.Context, id, userID string, at time.Time) (*entity.Agreement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	agreement, ok := r.agreements[id]
	if !ok {
		return nil, errors.NotFound("Agreement", nil)
	}
	signedAt := at
	switch userID {
	case agreement.OwnerID:
		agreement.OwnerSignedAt = &signedAt
	case agreement.TenantID:
		agreement.TenantSignedAt = &signedAt
	default:
		return nil, errors.Forbidden("You are not a party to this agreement", nil)
	}
	copied := *agreement
	return &copied, nil
}

func (r *fakeAgreementRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.agreements[id]; !ok {
		return errors.NotFound("Agreement", nil)
	}
	delete(r.agreements, id)
	return nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
	seq   int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == "" {
		r.seq++
		user.ID = fmt.Sprintf("user-%d", r.seq)
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.User, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.User
	for _, user := range r.users {
		copied := *user
		out = append(out, &copied)
	}
	return out, int64(len(out)), nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return errors.NotFound("User", nil)
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) ReplaceProfileImage(ctx context.Context, userID string, meta *entity.FileMetadata) (*entity.FileMetadata, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	var old *entity.FileMetadata
	if user.ProfileImageID != "" {
		old = &entity.FileMetadata{ID: user.ProfileImageID, URL: "https://storage.googleapis.com/test/" + user.ProfileImageID}
	}
	user.ProfileImageID = meta.ID
	return old, nil
}

type fakeMessageRepo struct {
	mu       sync.Mutex
	messages []*entity.Message
	seq      int
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{}
}

func (r *fakeMessageRepo) Create(ctx context.Context, message *entity.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	message.ID = fmt.Sprintf("message-%d", r.seq)
	message.CreatedAt = time.Now()
	copied := *message
	r.messages = append(r.messages, &copied)
	return nil
}

func (r *fakeMessageRepo) ListByParticipants(ctx context.Context, userA, userB string, limit, offset int) ([]*entity.Message, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Message
	for _, m := range r.messages {
		hasA, hasB := false, false
		for _, p := range m.Participants {
			if p == userA {
				hasA = true
			}
			if p == userB {
				hasB = true
			}
		}
		if hasA && hasB {
			copied := *m
			out = append(out, &copied)
		}
	}
	return out, int64(len(out)), nil
}
