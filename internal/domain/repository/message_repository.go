package repository

import (
	"context"

	"subleasehub/internal/domain/entity"
)

type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	ListByParticipants(ctx context.Context, userA, userB string, limit, offset int) ([]*entity.Message, int64, error)
}
