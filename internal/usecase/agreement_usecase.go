package usecase

import (
	"context"
	"time"

	"subleasehub/internal/domain/entity"
	"subleasehub/internal/domain/repository"
	"subleasehub/pkg/errors"
)

type AgreementUseCase struct {
	agreementRepo repository.AgreementRepository
	listingRepo   repository.ListingRepository
	userRepo      repository.UserRepository
}

func NewAgreementUseCase(
	agreementRepo repository.AgreementRepository,
	listingRepo repository.ListingRepository,
	userRepo repository.UserRepository,
) *AgreementUseCase {
	return &AgreementUseCase{
		agreementRepo: agreementRepo,
		listingRepo:   listingRepo,
		userRepo:      userRepo,
	}
}

type CreateAgreementInput struct {
	StartDate       time.Time
	EndDate         time.Time
	TenantID        string
	OwnerID         string
	NumPeople       int
	PayTerm         string
	Rent            *float64
	SecurityDeposit *float64
}

// CheckAvailability reports whether [start, end] can be booked on the
// listing. It is a pure read: creation re-runs the same check inside a
// transaction, so a gap between check and create cannot double-book.
func (uc *AgreementUseCase) CheckAvailability(ctx context.Context, listingID string, start, end time.Time) (bool, error) {
	if start.After(end) {
		return false, errors.BadRequest("startDate must not be after endDate", nil)
	}

	listing, err := uc.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return false, err
	}

	if !listing.Contains(start, end) {
		return false, nil
	}

	agreements, err := uc.agreementRepo.ListByListingID(ctx, listingID)
	if err != nil {
		return false, err
	}

	for _, a := range agreements {
		if a.Overlaps(start, end) {
			return false, nil
		}
	}

	return true, nil
}

func (uc *AgreementUseCase) CreateAgreement(ctx context.Context, listingID string, input CreateAgreementInput) (*entity.Agreement, error) {
	if input.StartDate.IsZero() || input.EndDate.IsZero() || input.TenantID == "" || input.OwnerID == "" || input.NumPeople <= 0 {
		return nil, errors.BadRequest("Missing some required fields (startDate, endDate, tenant, owner, numPeople)", nil)
	}

	if !input.EndDate.After(input.StartDate) {
		return nil, errors.BadRequest("endDate must be after startDate", nil)
	}

	listing, err := uc.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}

	deposit := input.SecurityDeposit
	if deposit == nil {
		deposit = listing.SecurityDeposit
	}
	if deposit == nil {
		return nil, errors.BadRequest("Must specify securityDeposit for this listing", nil)
	}

	rent := listing.Rent
	if input.Rent != nil {
		rent = *input.Rent
	}

	payTerm := input.PayTerm
	if payTerm == "" {
		payTerm = entity.PayTermMonthly
	}

	if !listing.Contains(input.StartDate, input.EndDate) {
		return nil, errors.Conflict("Requested dates fall outside the listing availability window", nil)
	}

	agreement := &entity.Agreement{
		ListingID:       listingID,
		OwnerID:         input.OwnerID,
		TenantID:        input.TenantID,
		StartDate:       input.StartDate,
		EndDate:         input.EndDate,
		Rent:            rent,
		SecurityDeposit: *deposit,
		NumPeople:       input.NumPeople,
		PayTerm:         payTerm,
	}

	// The repository re-validates availability and inserts atomically.
	if err := uc.agreementRepo.CreateIfAvailable(ctx, agreement); err != nil {
		return nil, err
	}

	return agreement, nil
}

// Sign records the caller's signature. Which side gets stamped is
// decided by identity against the stored owner and tenant references,
// never by a role name in the request. Re-signing refreshes the
// timestamp; the other side's timestamp is never touched.
func (uc *AgreementUseCase) Sign(ctx context.Context, agreementID, userID string) (*entity.Agreement, error) {
	return uc.agreementRepo.Sign(ctx, agreementID, userID, time.Now())
}

func (uc *AgreementUseCase) GetAgreement(ctx context.Context, id string) (*entity.Agreement, error) {
	return uc.agreementRepo.GetByID(ctx, id)
}

func (uc *AgreementUseCase) ListAgreements(ctx context.Context, agreementID, ownerID, tenantID, listingID string, from, to *time.Time, limit, offset int) ([]*entity.Agreement, int64, error) {
	if agreementID != "" {
		agreement, err := uc.agreementRepo.GetByID(ctx, agreementID)
		if err != nil {
			if errors.Is(err, "NOT_FOUND") {
				return []*entity.Agreement{}, 0, nil
			}
			return nil, 0, err
		}
		return []*entity.Agreement{agreement}, 1, nil
	}

	filter := make(map[string]interface{})
	if ownerID != "" {
		filter["ownerId"] = ownerID
	}
	if tenantID != "" {
		filter["tenantId"] = tenantID
	}
	if listingID != "" {
		filter["listingId"] = listingID
	}

	return uc.agreementRepo.List(ctx, filter, from, to, limit, offset)
}

func (uc *AgreementUseCase) DeleteAgreement(ctx context.Context, id string) error {
	return uc.agreementRepo.Delete(ctx, id)
}
