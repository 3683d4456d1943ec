package repository

import (
	"context"
	"time"

	"subleasehub/internal/domain/entity"
)

type ListingRepository interface {
	Create(ctx context.Context, listing *entity.Listing) error
	GetByID(ctx context.Context, id string) (*entity.Listing, error)
	List(ctx context.Context, filter map[string]interface{}, from, to *time.Time, limit, offset int) ([]*entity.Listing, int64, error)
	Update(ctx context.Context, listing *entity.Listing) error
	Delete(ctx context.Context, id string) error
	AddImage(ctx context.Context, listingID, imageID string) error
}
