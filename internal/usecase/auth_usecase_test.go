package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"subleasehub/pkg/errors"
)

const testJWTSecret = "test-secret"

func setupAuthTest(t *testing.T) (*AuthUseCase, *fakeUserRepo) {
	t.Helper()
	userRepo := newFakeUserRepo()
	return NewAuthUseCase(userRepo, testJWTSecret, 3600), userRepo
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	uc, _ := setupAuthTest(t)

	result, err := uc.Register(ctx, RegisterInput{
		Name:     "John Doe",
		Email:    "john@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)
	require.NotNil(t, result.User)
	assert.NotEmpty(t, result.User.ID)
	assert.NotEmpty(t, result.Token)
	assert.NotEqual(t, "hunter22", result.User.Password)

	claims := &jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(result.Token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, claims.Subject)

	t.Run("duplicate email", func(t *testing.T) {
		_, err := uc.Register(ctx, RegisterInput{
			Name:     "Imposter",
			Email:    "john@example.com",
			Password: "other",
		})
		assert.True(t, errors.Is(err, "CONFLICT"))
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	uc, _ := setupAuthTest(t)

	_, err := uc.Register(ctx, RegisterInput{
		Name:     "John Doe",
		Email:    "john@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		result, err := uc.Login(ctx, "john@example.com", "hunter22")
		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := uc.Login(ctx, "john@example.com", "wrong")
		assert.True(t, errors.Is(err, "UNAUTHORIZED"))
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := uc.Login(ctx, "nobody@example.com", "hunter22")
		assert.True(t, errors.Is(err, "UNAUTHORIZED"))
	})
}

func TestPasswordNeverSerialized(t *testing.T) {
	uc, _ := setupAuthTest(t)

	result, err := uc.Register(context.Background(), RegisterInput{
		Name:     "John Doe",
		Email:    "john@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	body, err := json.Marshal(result.User)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "password")
	assert.NotContains(t, string(body), result.User.Password)
}
