package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/zenitherp/payroll_backend/internal/apperrors"
	"github.com/zenitherp/payroll_backend/internal/core/domain"
	"github.com/zenitherp/payroll_backend/internal/core/services"
	"github.com/zenitherp/payroll_backend/internal/dto"
	"github.com/zenitherp/payroll_backend/internal/utils"
)

func TestCreateUser_HashesPassword(t *testing.T) {
	repo := new(MockUserRepository)
	service := services.NewUserService(repo)
	ctx := context.Background()

	var saved domain.User
	repo.On("SaveUser", ctx, mock.Anything).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.User) }).
		Return(nil)

	user, err := service.CreateUser(ctx, dto.CreateUserRequest{
		Username: "clerk1",
		Password: "s3cret-pass",
		Role:     "CLERK",
	}, "admin-1")

	assert.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", user.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("s3cret-pass", saved.PasswordHash))
	assert.Equal(t, domain.RoleClerk, saved.Role)
}

func TestVerifyCredentials_UnknownUser(t *testing.T) {
	repo := new(MockUserRepository)
	service := services.NewUserService(repo)
	ctx := context.Background()

	repo.On("FindUserByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound)

	_, err := service.VerifyCredentials(ctx, "ghost", "whatever")

	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestVerifyCredentials_WrongPassword(t *testing.T) {
	repo := new(MockUserRepository)
	service := services.NewUserService(repo)
	ctx := context.Background()

	hash, err := utils.HashPassword("correct-pass")
	assert.NoError(t, err)

	repo.On("FindUserByUsername", ctx, "clerk1").Return(&domain.User{
		UserID:       "user-1",
		Username:     "clerk1",
		PasswordHash: hash,
	}, nil)

	_, err = service.VerifyCredentials(ctx, "clerk1", "wrong-pass")

	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestVerifyCredentials_Success(t *testing.T) {
	repo := new(MockUserRepository)
	service := services.NewUserService(repo)
	ctx := context.Background()

	hash, err := utils.HashPassword("correct-pass")
	assert.NoError(t, err)

	repo.On("FindUserByUsername", ctx, "clerk1").Return(&domain.User{
		UserID:       "user-1",
		Username:     "clerk1",
		PasswordHash: hash,
		Role:         domain.RoleClerk,
	}, nil)

	user, err := service.VerifyCredentials(ctx, "clerk1", "correct-pass")

	assert.NoError(t, err)
	assert.Equal(t, "user-1", user.UserID)
}
