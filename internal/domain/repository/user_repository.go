package repository

import (
	"context"

	"subleasehub/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.User, int64, error)
	Update(ctx context.Context, user *entity.User) error
	// ReplaceProfileImage points the user at the new image metadata and
	// removes the old metadata document in one transaction. It returns the
	// replaced metadata (nil when the user had no profile image) so the
	// caller can clean up the stored object.
	ReplaceProfileImage(ctx context.Context, userID string, meta *entity.FileMetadata) (*entity.FileMetadata, error)
}
