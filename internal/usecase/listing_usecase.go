package usecase

import (
	"context"
	"time"

	"subleasehub/internal/domain/entity"
	"subleasehub/internal/domain/repository"
	"subleasehub/internal/domain/service"
	"subleasehub/pkg/errors"
	"subleasehub/pkg/logger"
)

type ListingUseCase struct {
	listingRepo repository.ListingRepository
	userRepo    repository.UserRepository
	geocoder    service.GeocodingService
}

func NewListingUseCase(
	listingRepo repository.ListingRepository,
	userRepo repository.UserRepository,
	geocoder service.GeocodingService,
) *ListingUseCase {
	return &ListingUseCase{
		listingRepo: listingRepo,
		userRepo:    userRepo,
		geocoder:    geocoder,
	}
}

type CreateListingInput struct {
	Title           string
	Description     string
	Address         string
	Rent            float64
	SecurityDeposit *float64
	StartDate       time.Time
	EndDate         time.Time
	Capacity        int
	Website         string
}

func (uc *ListingUseCase) CreateListing(ctx context.Context, ownerID string, input CreateListingInput) (*entity.Listing, error) {
	if !input.EndDate.After(input.StartDate) {
		return nil, errors.BadRequest("endDate must be after startDate", nil)
	}

	if _, err := uc.userRepo.GetByID(ctx, ownerID); err != nil {
		return nil, err
	}

	listing := &entity.Listing{
		Title:           input.Title,
		Description:     input.Description,
		Address:         input.Address,
		Rent:            input.Rent,
		SecurityDeposit: input.SecurityDeposit,
		StartDate:       input.StartDate,
		EndDate:         input.EndDate,
		Capacity:        input.Capacity,
		Website:         input.Website,
		OwnerID:         ownerID,
	}

	// Geocoding is an explicit step here, not a storage hook. A failed
	// lookup leaves the listing without coordinates.
	location, _ := uc.geocoder.Resolve(ctx, input.Address)
	listing.Location = location
	if location == nil {
		logger.Warn("listing address %q did not geocode", input.Address)
	}

	if err := uc.listingRepo.Create(ctx, listing); err != nil {
		return nil, err
	}

	return listing, nil
}

func (uc *ListingUseCase) GetListing(ctx context.Context, id string) (*entity.Listing, error) {
	return uc.listingRepo.GetByID(ctx, id)
}

func (uc *ListingUseCase) ListListings(ctx context.Context, listingID, ownerID string, from, to *time.Time, limit, offset int) ([]*entity.Listing, int64, error) {
	if listingID != "" {
		listing, err := uc.listingRepo.GetByID(ctx, listingID)
		if err != nil {
			if errors.Is(err, "NOT_FOUND") {
				return []*entity.Listing{}, 0, nil
			}
			return nil, 0, err
		}
		return []*entity.Listing{listing}, 1, nil
	}

	filter := make(map[string]interface{})
	if ownerID != "" {
		filter["ownerId"] = ownerID
	}

	return uc.listingRepo.List(ctx, filter, from, to, limit, offset)
}

func (uc *ListingUseCase) UpdateListing(ctx context.Context, id, actorID string, input CreateListingInput) (*entity.Listing, error) {
	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if listing.OwnerID != actorID {
		return nil, errors.Forbidden("Only the listing owner can update it", nil)
	}

	if !input.EndDate.After(input.StartDate) {
		return nil, errors.BadRequest("endDate must be after startDate", nil)
	}

	if input.Address != listing.Address {
		location, _ := uc.geocoder.Resolve(ctx, input.Address)
		listing.Location = location
	}

	listing.Title = input.Title
	listing.Description = input.Description
	listing.Address = input.Address
	listing.Rent = input.Rent
	listing.SecurityDeposit = input.SecurityDeposit
	listing.StartDate = input.StartDate
	listing.EndDate = input.EndDate
	listing.Capacity = input.Capacity
	listing.Website = input.Website

	if err := uc.listingRepo.Update(ctx, listing); err != nil {
		return nil, err
	}

	return listing, nil
}

func (uc *ListingUseCase) DeleteListing(ctx context.Context, id, actorID string) error {
	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if listing.OwnerID != actorID {
		return errors.Forbidden("Only the listing owner can delete it", nil)
	}

	return uc.listingRepo.Delete(ctx, id)
}
