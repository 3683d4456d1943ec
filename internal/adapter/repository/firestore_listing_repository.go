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

type firestoreListingRepository struct {
	client *firestore.Client
}

func NewFirestoreListingRepository(client *firestore.Client) repository.ListingRepository {
	return &firestoreListingRepository{
		client: client,
	}
}

func (r *firestoreListingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	if listing.ID == "" {
		doc := r.client.Collection("listings").NewDoc()
		listing.ID = doc.ID
	}

	now := time.Now()
	if listing.CreatedAt.IsZero() {
		listing.CreatedAt = now
	}
	listing.UpdatedAt = now

	if listing.ImageIDs == nil {
		listing.ImageIDs = []string{}
	}

	_, err := r.client.Collection("listings").Doc(listing.ID).Set(ctx, listing)
	if err != nil {
		return errors.Internal("Failed to create listing", err)
	}

	return nil
}

func (r *firestoreListingRepository) GetByID(ctx context.Context, id string) (*entity.Listing, error) {
	doc, err := r.client.Collection("listings").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Listing", err)
		}
		return nil, errors.Internal("Failed to get listing", err)
	}

	var listing entity.Listing
	if err := doc.DataTo(&listing); err != nil {
		return nil, errors.Internal("Failed to parse listing data", err)
	}

	return &listing, nil
}

func (r *firestoreListingRepository) List(ctx context.Context, filter map[string]interface{}, from, to *time.Time, limit, offset int) ([]*entity.Listing, int64, error) {
	query := r.client.Collection("listings").Query

	for key, value := range filter {
		query = query.Where(key, "==", value)
	}

	query = query.OrderBy("createdAt", firestore.Desc)

	// Firestore rejects range filters across two fields, so the date
	// window is applied in memory after the equality query.
	iter := query.Documents(ctx)
	var matched []*entity.Listing

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate listings", err)
		}
		var listing entity.Listing
		if err := doc.DataTo(&listing); err != nil {
			return nil, 0, errors.Internal("Failed to parse listing data", err)
		}
		if from != nil && listing.EndDate.Before(*from) {
			continue
		}
		if to != nil && listing.StartDate.After(*to) {
			continue
		}
		matched = append(matched, &listing)
	}

	total := int64(len(matched))

	start := offset
	end := len(matched)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	if start >= len(matched) {
		return []*entity.Listing{}, total, nil
	}

	return matched[start:end], total, nil
}

func (r *firestoreListingRepository) Update(ctx context.Context, listing *entity.Listing) error {
	listing.UpdatedAt = time.Now()

	_, err := r.client.Collection("listings").Doc(listing.ID).Set(ctx, listing)
	if err != nil {
		return errors.Internal("Failed to update listing", err)
	}

	return nil
}

func (r *firestoreListingRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("listings").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete listing", err)
	}

	return nil
}

func (r *firestoreListingRepository) AddImage(ctx context.Context, listingID, imageID string) error {
	_, err := r.client.Collection("listings").Doc(listingID).Update(ctx, []firestore.Update{
		{Path: "imageIds", Value: firestore.ArrayUnion(imageID)},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Listing", err)
		}
		return errors.Internal("Failed to add listing image", err)
	}

	return nil
}
