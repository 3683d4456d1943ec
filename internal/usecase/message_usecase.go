package usecase

import (
	"context"

	"subleasehub/internal/domain/entity"
	"subleasehub/internal/domain/repository"
	"subleasehub/pkg/errors"
)

type MessageUseCase struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
}

func NewMessageUseCase(messageRepo repository.MessageRepository, userRepo repository.UserRepository) *MessageUseCase {
	return &MessageUseCase{
		messageRepo: messageRepo,
		userRepo:    userRepo,
	}
}

func (uc *MessageUseCase) SendMessage(ctx context.Context, senderID, recipientID, content string) (*entity.Message, error) {
	if content == "" {
		return nil, errors.BadRequest("content is required", nil)
	}
	if recipientID == "" {
		return nil, errors.BadRequest("recipient is required", nil)
	}
	if recipientID == senderID {
		return nil, errors.BadRequest("cannot message yourself", nil)
	}

	if _, err := uc.userRepo.GetByID(ctx, recipientID); err != nil {
		return nil, err
	}

	message := &entity.Message{
		SenderID:     senderID,
		Participants: []string{senderID, recipientID},
		Content:      content,
	}

	if err := uc.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	return message, nil
}

func (uc *MessageUseCase) ListConversation(ctx context.Context, userID, otherID string, limit, offset int) ([]*entity.Message, int64, error) {
	if otherID == "" {
		return nil, 0, errors.BadRequest("participant is required", nil)
	}

	return uc.messageRepo.ListByParticipants(ctx, userID, otherID, limit, offset)
}
