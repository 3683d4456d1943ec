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

type firestoreUserRepository struct {
	client *firestore.Client
}

func NewFirestoreUserRepository(client *firestore.Client) repository.UserRepository {
	return &firestoreUserRepository{
		client: client,
	}
}

func (r *firestoreUserRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == "" {
		doc := r.client.Collection("users").NewDoc()
		user.ID = doc.ID
	}

	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	if user.SavedListingIDs == nil {
		user.SavedListingIDs = []string{}
	}

	_, err := r.client.Collection("users").Doc(user.ID).Set(ctx, user)
	if err != nil {
		return errors.Internal("Failed to create user", err)
	}

	return nil
}

func (r *firestoreUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	doc, err := r.client.Collection("users").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("User", err)
		}
		return nil, errors.Internal("Failed to get user", err)
	}

	var user entity.User
	if err := doc.DataTo(&user); err != nil {
		return nil, errors.Internal("Failed to parse user data", err)
	}

	return &user, nil
}

func (r *firestoreUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	iter := r.client.Collection("users").Query.Where("email", "==", email).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.NotFound("User", nil)
	}
	if err != nil {
		return nil, errors.Internal("Failed to query user by email", err)
	}

	var user entity.User
	if err := doc.DataTo(&user); err != nil {
		return nil, errors.Internal("Failed to parse user data", err)
	}

	return &user, nil
}

func (r *firestoreUserRepository) List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.User, int64, error) {
	query := r.client.Collection("users").Query

	for key, value := range filter {
		query = query.Where(key, "==", value)
	}

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count users", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var users []*entity.User

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate users", err)
		}
		var user entity.User
		if err := doc.DataTo(&user); err != nil {
			return nil, 0, errors.Internal("Failed to parse user data", err)
		}
		users = append(users, &user)
	}

	return users, total, nil
}

func (r *firestoreUserRepository) Update(ctx context.Context, user *entity.User) error {
	user.UpdatedAt = time.Now()

	_, err := r.client.Collection("users").Doc(user.ID).Set(ctx, user)
	if err != nil {
		return errors.Internal("Failed to update user", err)
	}

	return nil
}

func (r *firestoreUserRepository) ReplaceProfileImage(ctx context.Context, userID string, meta *entity.FileMetadata) (*entity.FileMetadata, error) {
	userRef := r.client.Collection("users").Doc(userID)
	newMetaRef := r.client.Collection("files").Doc(meta.ID)

	var old *entity.FileMetadata

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		old = nil

		userDoc, err := tx.Get(userRef)
		if err != nil {
			return err
		}

		var user entity.User
		if err := userDoc.DataTo(&user); err != nil {
			return err
		}

		var oldMetaRef *firestore.DocumentRef
		if user.ProfileImageID != "" {
			oldMetaRef = r.client.Collection("files").Doc(user.ProfileImageID)
			oldDoc, err := tx.Get(oldMetaRef)
			if err != nil && status.Code(err) != codes.NotFound {
				return err
			}
			if err == nil {
				var oldMeta entity.FileMetadata
				if err := oldDoc.DataTo(&oldMeta); err != nil {
					return err
				}
				old = &oldMeta
			}
		}

		if err := tx.Create(newMetaRef, meta); err != nil {
			return err
		}
		if err := tx.Update(userRef, []firestore.Update{
			{Path: "profileImageId", Value: meta.ID},
			{Path: "updatedAt", Value: time.Now()},
		}); err != nil {
			return err
		}
		if old != nil {
			if err := tx.Delete(oldMetaRef); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("User", err)
		}
		return nil, errors.Internal("Failed to replace profile image", err)
	}

	return old, nil
}
