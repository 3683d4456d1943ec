package repository

import (
	"context"

	"subleasehub/internal/domain/entity"
)

type FileMetadataRepository interface {
	Create(ctx context.Context, meta *entity.FileMetadata) error
	GetByID(ctx context.Context, id string) (*entity.FileMetadata, error)
	ListByOwner(ctx context.Context, ownerType, ownerID string) ([]*entity.FileMetadata, error)
	Delete(ctx context.Context, id string) error
}
