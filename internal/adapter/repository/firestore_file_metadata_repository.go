package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"subleasehub/internal/domain/entity"
	"subleasehub/internal/domain/repository"
	"subleasehub/pkg/errors"
)

type firestoreFileMetadataRepository struct {
	client *firestore.Client
}

func NewFirestoreFileMetadataRepository(client *firestore.Client) repository.FileMetadataRepository {
	return &firestoreFileMetadataRepository{
		client: client,
	}
}

func (r *firestoreFileMetadataRepository) Create(ctx context.Context, meta *entity.FileMetadata) error {
	if meta.ID == "" {
		doc := r.client.Collection("files").NewDoc()
		meta.ID = doc.ID
	}

	if meta.CreatedAt.IsZero() {
		meta.CreatedAt = time.Now()
	}

	_, err := r.client.Collection("files").Doc(meta.ID).Set(ctx, meta)
	if err != nil {
		return errors.Internal("Failed to create file metadata", err)
	}

	return nil
}

func (r *firestoreFileMetadataRepository) GetByID(ctx context.Context, id string) (*entity.FileMetadata, error) {
	doc, err := r.client.Collection("files").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("File", err)
		}
		return nil, errors.Internal("Failed to get file metadata", err)
	}

	var meta entity.FileMetadata
	if err := doc.DataTo(&meta); err != nil {
		return nil, errors.Internal("Failed to parse file metadata", err)
	}

	return &meta, nil
}

func (r *firestoreFileMetadataRepository) ListByOwner(ctx context.Context, ownerType, ownerID string) ([]*entity.FileMetadata, error) {
	iter := r.client.Collection("files").Query.
		Where("ownerType", "==", ownerType).
		Where("ownerId", "==", ownerID).
		Documents(ctx)

	var files []*entity.FileMetadata
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate file metadata", err)
		}
		var meta entity.FileMetadata
		if err := doc.DataTo(&meta); err != nil {
			return nil, errors.Internal("Failed to parse file metadata", err)
		}
		files = append(files, &meta)
	}

	return files, nil
}

func (r *firestoreFileMetadataRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("files").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete file metadata", err)
	}

	return nil
}
