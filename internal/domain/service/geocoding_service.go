package service

import (
	"context"

	"subleasehub/internal/domain/entity"
)

// GeocodingService resolves a street address to coordinates. A lookup
// that fails for any reason (network, no match) returns (nil, nil); the
// caller stores the listing without a location.
type GeocodingService interface {
	Resolve(ctx context.Context, address string) (*entity.GeoPoint, error)
}
