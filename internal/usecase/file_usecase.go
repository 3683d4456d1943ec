package usecase

import (
	"context"
	"io"

	"github.com/google/uuid"

	"subleasehub/internal/domain/entity"
	"subleasehub/internal/domain/repository"
	"subleasehub/internal/domain/service"
	"subleasehub/pkg/errors"
	"subleasehub/pkg/logger"
)

type FileUseCase struct {
	fileRepo    repository.FileMetadataRepository
	userRepo    repository.UserRepository
	listingRepo repository.ListingRepository
	storage     service.FileUploadService
}

func NewFileUseCase(
	fileRepo repository.FileMetadataRepository,
	userRepo repository.UserRepository,
	listingRepo repository.ListingRepository,
	storage service.FileUploadService,
) *FileUseCase {
	return &FileUseCase{
		fileRepo:    fileRepo,
		userRepo:    userRepo,
		listingRepo: listingRepo,
		storage:     storage,
	}
}

// UploadProfileImage stores the new image, then swaps the user's
// reference and the metadata document in one transaction. Only after
// the swap commits is the old stored object deleted; if anything fails
// before that, the user still points at the previous image.
func (uc *FileUseCase) UploadProfileImage(ctx context.Context, userID string, file io.Reader, mimeType, filename string) (*entity.FileMetadata, error) {
	if !isImageMime(mimeType) {
		return nil, errors.BadRequest("Only image uploads are allowed", nil)
	}

	url, err := uc.storage.UploadFile(ctx, file, mimeType, "profiles", true)
	if err != nil {
		return nil, errors.Internal("Failed to upload file", err)
	}

	meta := &entity.FileMetadata{
		URL:       url,
		Filename:  filename,
		MimeType:  mimeType,
		OwnerType: entity.FileOwnerTypeUser,
		OwnerID:   userID,
	}
	meta.ID = newFileID()

	old, err := uc.userRepo.ReplaceProfileImage(ctx, userID, meta)
	if err != nil {
		// Compensate: the orphaned upload must not linger.
		if delErr := uc.storage.DeleteFile(ctx, url); delErr != nil {
			logger.Warn("failed to clean up orphaned upload %s: %v", url, delErr)
		}
		return nil, err
	}

	if old != nil {
		if delErr := uc.storage.DeleteFile(ctx, old.URL); delErr != nil {
			logger.Warn("failed to delete replaced profile image %s: %v", old.URL, delErr)
		}
	}

	return meta, nil
}

func (uc *FileUseCase) UploadListingImage(ctx context.Context, listingID, actorID string, file io.Reader, mimeType, filename string) (*entity.FileMetadata, error) {
	if !isImageMime(mimeType) {
		return nil, errors.BadRequest("Only image uploads are allowed", nil)
	}

	listing, err := uc.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if listing.OwnerID != actorID {
		return nil, errors.Forbidden("Only the listing owner can add images", nil)
	}

	url, err := uc.storage.UploadFile(ctx, file, mimeType, "listings", true)
	if err != nil {
		return nil, errors.Internal("Failed to upload file", err)
	}

	meta := &entity.FileMetadata{
		URL:       url,
		Filename:  filename,
		MimeType:  mimeType,
		OwnerType: entity.FileOwnerTypeListing,
		OwnerID:   listingID,
	}

	if err := uc.fileRepo.Create(ctx, meta); err != nil {
		if delErr := uc.storage.DeleteFile(ctx, url); delErr != nil {
			logger.Warn("failed to clean up orphaned upload %s: %v", url, delErr)
		}
		return nil, err
	}

	if err := uc.listingRepo.AddImage(ctx, listingID, meta.ID); err != nil {
		return nil, err
	}

	return meta, nil
}

func (uc *FileUseCase) ListListingImages(ctx context.Context, listingID string) ([]*entity.FileMetadata, error) {
	if _, err := uc.listingRepo.GetByID(ctx, listingID); err != nil {
		return nil, err
	}

	return uc.fileRepo.ListByOwner(ctx, entity.FileOwnerTypeListing, listingID)
}

// newFileID pre-assigns the metadata document ID so the profile swap
// transaction can create it by reference.
func newFileID() string {
	return uuid.New().String()
}

func isImageMime(mimeType string) bool {
	switch mimeType {
	case "image/jpeg", "image/jpg", "image/png", "image/gif":
		return true
	}
	return false
}
