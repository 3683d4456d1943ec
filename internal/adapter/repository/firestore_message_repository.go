package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"subleasehub/internal/domain/entity"
	"subleasehub/internal/domain/repository"
	"subleasehub/pkg/errors"
)

type firestoreMessageRepository struct {
	client *firestore.Client
}

func NewFirestoreMessageRepository(client *firestore.Client) repository.MessageRepository {
	return &firestoreMessageRepository{
		client: client,
	}
}

func (r *firestoreMessageRepository) Create(ctx context.Context, message *entity.Message) error {
	if message.ID == "" {
		doc := r.client.Collection("messages").NewDoc()
		message.ID = doc.ID
	}

	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}

	_, err := r.client.Collection("messages").Doc(message.ID).Set(ctx, message)
	if err != nil {
		return errors.Internal("Failed to create message", err)
	}

	return nil
}

func (r *firestoreMessageRepository) ListByParticipants(ctx context.Context, userA, userB string, limit, offset int) ([]*entity.Message, int64, error) {
	// Participant pairs are stored unordered; query one side and narrow
	// to conversations that include the other.
	query := r.client.Collection("messages").Query.
		Where("participants", "array-contains", userA).
		OrderBy("createdAt", firestore.Asc)

	iter := query.Documents(ctx)
	var matched []*entity.Message

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate messages", err)
		}
		var message entity.Message
		if err := doc.DataTo(&message); err != nil {
			return nil, 0, errors.Internal("Failed to parse message data", err)
		}
		for _, p := range message.Participants {
			if p == userB {
				matched = append(matched, &message)
				break
			}
		}
	}

	total := int64(len(matched))

	start := offset
	end := len(matched)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	if start >= len(matched) {
		return []*entity.Message{}, total, nil
	}

	return matched[start:end], total, nil
}
