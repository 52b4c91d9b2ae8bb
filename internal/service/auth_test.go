package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"giftstore-backend/internal/domain"
	"giftstore-backend/internal/repository"
	"giftstore-backend/internal/repository/dao"
)

func setupAuthService(t *testing.T) *AuthService {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, dao.InitTables(db))

	return NewAuthService(repository.NewUserRepository(dao.NewUserDAO(db)))
}

func TestSignupAndLogin(t *testing.T) {
	svc := setupAuthService(t)
	ctx := context.Background()

	created, err := svc.Signup(ctx, domain.User{
		Email:    "owner@giftstore.example",
		Password: "opensesame1",
		Name:     "Store Owner",
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	assert.NotEqual(t, "opensesame1", created.Password) // stored hashed

	user, err := svc.Login(ctx, "owner@giftstore.example", "opensesame1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
}

func TestLogin_wrongPassword(t *testing.T) {
	svc := setupAuthService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, domain.User{
		Email:    "owner@giftstore.example",
		Password: "opensesame1",
		Name:     "Store Owner",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, "owner@giftstore.example", "not-the-password")
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestLogin_unknownEmail(t *testing.T) {
	svc := setupAuthService(t)

	_, err := svc.Login(context.Background(), "nobody@giftstore.example", "whatever")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSignup_duplicateEmail(t *testing.T) {
	svc := setupAuthService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, domain.User{Email: "owner@giftstore.example", Password: "opensesame1", Name: "First"})
	require.NoError(t, err)

	_, err = svc.Signup(ctx, domain.User{Email: "owner@giftstore.example", Password: "different2", Name: "Second"})
	assert.ErrorIs(t, err, ErrUserEmailExists)
}
