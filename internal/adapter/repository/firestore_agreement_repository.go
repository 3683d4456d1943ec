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

type firestoreAgreementRepository struct {
	client *firestore.Client
}

func NewFirestoreAgreementRepository(client *firestore.Client) repository.AgreementRepository {
	return &firestoreAgreementRepository{
		client: client,
	}
}

func (r *firestoreAgreementRepository) CreateIfAvailable(ctx context.Context, agreement *entity.Agreement) error {
	if agreement.ID == "" {
		doc := r.client.Collection("agreements").NewDoc()
		agreement.ID = doc.ID
	}

	now := time.Now()
	agreement.CreatedAt = now
	agreement.UpdatedAt = now

	docRef := r.client.Collection("agreements").Doc(agreement.ID)
	query := r.client.Collection("agreements").Query.Where("listingId", "==", agreement.ListingID)

	// The overlap scan and the insert share one transaction so two
	// concurrent creates for intersecting ranges serialize: exactly one
	// commits, the other retries, sees the winner and gets CONFLICT.
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		iter := tx.Documents(query)
		defer iter.Stop()

		for {
			doc, err := iter.Next()
			if err == iterator.Done {
				break
			}
			if err != nil {
				return err
			}

			var existing entity.Agreement
			if err := doc.DataTo(&existing); err != nil {
				return err
			}
			if existing.Overlaps(agreement.StartDate, agreement.EndDate) {
				return errors.Conflict("Listing is already booked for the requested dates", nil)
			}
		}

		return tx.Create(docRef, agreement)
	})
	if err != nil {
		if errors.Is(err, "CONFLICT") {
			return err
		}
		return errors.Internal("Failed to create agreement", err)
	}

	return nil
}

func (r *firestoreAgreementRepository) GetByID(ctx context.Context, id string) (*entity.Agreement, error) {
	doc, err := r.client.Collection("agreements").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Agreement", err)
		}
		return nil, errors.Internal("Failed to get agreement", err)
	}

	var agreement entity.Agreement
	if err := doc.DataTo(&agreement); err != nil {
		return nil, errors.Internal("Failed to parse agreement data", err)
	}

	return &agreement, nil
}

func (r *firestoreAgreementRepository) List(ctx context.Context, filter map[string]interface{}, from, to *time.Time, limit, offset int) ([]*entity.Agreement, int64, error) {
	query := r.client.Collection("agreements").Query

	for key, value := range filter {
		query = query.Where(key, "==", value)
	}

	query = query.OrderBy("createdAt", firestore.Desc)

	iter := query.Documents(ctx)
	var matched []*entity.Agreement

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate agreements", err)
		}
		var agreement entity.Agreement
		if err := doc.DataTo(&agreement); err != nil {
			return nil, 0, errors.Internal("Failed to parse agreement data", err)
		}
		if from != nil && agreement.EndDate.Before(*from) {
			continue
		}
		if to != nil && agreement.StartDate.After(*to) {
			continue
		}
		matched = append(matched, &agreement)
	}

	total := int64(len(matched))

	start := offset
	end := len(matched)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	if start >= len(matched) {
		return []*entity.Agreement{}, total, nil
	}

	return matched[start:end], total, nil
}

func (r *firestoreAgreementRepository) ListByListingID(ctx context.Context, listingID string) ([]*entity.Agreement, error) {
	iter := r.client.Collection("agreements").Query.Where("listingId", "==", listingID).Documents(ctx)

	var agreements []*entity.Agreement
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate agreements", err)
		}
		var agreement entity.Agreement
		if err := doc.DataTo(&agreement); err != nil {
			return nil, errors.Internal("Failed to parse agreement data", err)
		}
		agreements = append(agreements, &agreement)
	}

	return agreements, nil
}

func (r *firestoreAgreementRepository) Sign(ctx context.Context, id, userID string, at time.Time) (*entity.Agreement, error) {
	docRef := r.client.Collection("agreements").Doc(id)

	var signed entity.Agreement

	// Read and field-level write share one transaction, and each side
	// only touches its own timestamp, so an owner sign and a tenant sign
	// racing each other both land.
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			return err
		}
		if err := doc.DataTo(&signed); err != nil {
			return err
		}

		var field string
		switch userID {
		case signed.OwnerID:
			signed.OwnerSignedAt = &at
			field = "ownerSignedAt"
		case signed.TenantID:
			signed.TenantSignedAt = &at
			field = "tenantSignedAt"
		default:
			return errors.Forbidden("You are not a party to this agreement", nil)
		}
		signed.UpdatedAt = at

		return tx.Update(docRef, []firestore.Update{
			{Path: field, Value: at},
			{Path: "updatedAt", Value: at},
		})
	})
	if err != nil {
		if errors.Is(err, "FORBIDDEN") {
			return nil, err
		}
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Agreement", err)
		}
		return nil, errors.Internal("Failed to sign agreement", err)
	}

	return &signed, nil
}

func (r *firestoreAgreementRepository) Delete(ctx context.Context, id string) error {
	docRef := r.client.Collection("agreements").Doc(id)
	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Agreement", err)
		}
		return errors.Internal("Failed to get agreement", err)
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return errors.Internal("Failed to delete agreement", err)
	}

	return nil
}
