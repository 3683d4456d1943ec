package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"subleasehub/internal/domain/entity"
	"subleasehub/pkg/errors"
)

func setupMessageTest(t *testing.T) *MessageUseCase {
	t.Helper()

	userRepo := newFakeUserRepo()
	ctx := context.Background()
	require.NoError(t, userRepo.Create(ctx, &entity.User{ID: "user-a", Name: "Alice"}))
	require.NoError(t, userRepo.Create(ctx, &entity.User{ID: "user-b", Name: "Bob"}))

	return NewMessageUseCase(newFakeMessageRepo(), userRepo)
}

func TestSendMessage(t *testing.T) {
	ctx := context.Background()
	uc := setupMessageTest(t)

	t.Run("delivers between participants", func(t *testing.T) {
		message, err := uc.SendMessage(ctx, "user-a", "user-b", "hi there")
		require.NoError(t, err)
		assert.Equal(t, "user-a", message.SenderID)
		assert.ElementsMatch(t, []string{"user-a", "user-b"}, message.Participants)

		messages, total, err := uc.ListConversation(ctx, "user-b", "user-a", 20, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, "hi there", messages[0].Content)
	})

	t.Run("empty content", func(t *testing.T) {
		_, err := uc.SendMessage(ctx, "user-a", "user-b", "")
		assert.True(t, errors.Is(err, "VALIDATION_ERROR"))
	})

	t.Run("self message", func(t *testing.T) {
		_, err := uc.SendMessage(ctx, "user-a", "user-a", "note to self")
		assert.True(t, errors.Is(err, "VALIDATION_ERROR"))
	})

	t.Run("unknown recipient", func(t *testing.T) {
		_, err := uc.SendMessage(ctx, "user-a", "ghost", "hello?")
		assert.True(t, errors.Is(err, "NOT_FOUND"))
	})
}

func TestListConversation(t *testing.T) {
	ctx := context.Background()
	uc := setupMessageTest(t)

	_, _, err := uc.ListConversation(ctx, "user-a", "", 20, 0)
	assert.True(t, errors.Is(err, "VALIDATION_ERROR"))
}
