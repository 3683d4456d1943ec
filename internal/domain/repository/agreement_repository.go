package repository

import (
	"context"
	"time"

	"subleasehub/internal/domain/entity"
)

type AgreementRepository interface {
	// CreateIfAvailable persists the agreement only if its date range does
	// not overlap any existing agreement on the same listing. The overlap
	// check and the insert run in one serializable transaction; a losing
	// concurrent create gets a CONFLICT error.
	CreateIfAvailable(ctx context.Context, agreement *entity.Agreement) error
	GetByID(ctx context.Context, id string) (*entity.Agreement, error)
	List(ctx context.Context, filter map[string]interface{}, from, to *time.Time, limit, offset int) ([]*entity.Agreement, int64, error)
	ListByListingID(ctx context.Context, listingID string) ([]*entity.Agreement, error)
	// Sign stamps the signature timestamp of whichever side userID
	// matches, touching only that side's field inside one transaction so
	// concurrent owner and tenant signs never overwrite each other. A
	// userID matching neither party gets FORBIDDEN.
	Sign(ctx context.Context, id, userID string, at time.Time) (*entity.Agreement, error)
	Delete(ctx context.Context, id string) error
}
