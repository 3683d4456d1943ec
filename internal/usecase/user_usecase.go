package usecase

import (
	"context"

	"subleasehub/internal/domain/entity"
	"subleasehub/internal/domain/repository"
	"subleasehub/pkg/errors"
)

type UserUseCase struct {
	userRepo    repository.UserRepository
	listingRepo repository.ListingRepository
}

func NewUserUseCase(userRepo repository.UserRepository, listingRepo repository.ListingRepository) *UserUseCase {
	return &UserUseCase{
		userRepo:    userRepo,
		listingRepo: listingRepo,
	}
}

func (uc *UserUseCase) GetUser(ctx context.Context, id string) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, id)
}

func (uc *UserUseCase) ListUsers(ctx context.Context, userID string, limit, offset int) ([]*entity.User, int64, error) {
	if userID != "" {
		user, err := uc.userRepo.GetByID(ctx, userID)
		if err != nil {
			if errors.Is(err, "NOT_FOUND") {
				return []*entity.User{}, 0, nil
			}
			return nil, 0, err
		}
		return []*entity.User{user}, 1, nil
	}

	return uc.userRepo.List(ctx, nil, limit, offset)
}

func (uc *UserUseCase) SaveListing(ctx context.Context, userID, listingID string) (*entity.User, error) {
	if _, err := uc.listingRepo.GetByID(ctx, listingID); err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	for _, id := range user.SavedListingIDs {
		if id == listingID {
			return user, nil
		}
	}

	user.SavedListingIDs = append(user.SavedListingIDs, listingID)
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (uc *UserUseCase) UnsaveListing(ctx context.Context, userID, listingID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	kept := user.SavedListingIDs[:0]
	for _, id := range user.SavedListingIDs {
		if id != listingID {
			kept = append(kept, id)
		}
	}
	user.SavedListingIDs = kept

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (uc *UserUseCase) ListSavedListings(ctx context.Context, userID string) ([]*entity.Listing, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	listings := make([]*entity.Listing, 0, len(user.SavedListingIDs))
	for _, id := range user.SavedListingIDs {
		listing, err := uc.listingRepo.GetByID(ctx, id)
		if err != nil {
			// A saved listing may have been deleted since; skip it.
			if errors.Is(err, "NOT_FOUND") {
				continue
			}
			return nil, err
		}
		listings = append(listings, listing)
	}

	return listings, nil
}
