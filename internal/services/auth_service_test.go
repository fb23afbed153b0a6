package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/JojerDojer/web-420/internal/models"
	"github.com/JojerDojer/web-420/internal/repositories"
	"github.com/JojerDojer/web-420/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(t *testing.T, repo repositories.Repository[models.User], events services.EventPublisher) *services.AuthService {
	t.Helper()
	svc, err := services.NewAuthService(repo, bcrypt.MinCost, events)
	require.NoError(t, err)
	return svc
}

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewMemoryRepository[models.User]()
	events := new(MockPublisher)
	events.On("Publish", mock.Anything, services.EventUserRegistered, mock.Anything).Return(nil).Once()
	authService := newAuthService(t, repo, events)

	err := authService.Signup(ctx, services.SignupInput{
		UserName:     "jdavidson",
		Password:     "s3cret",
		EmailAddress: []models.EmailAddress{{Email: "jd@example.com"}},
	})
	require.NoError(t, err)

	stored, err := repo.FindOne(ctx, "userName", "jdavidson")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("s3cret")))
	assert.Equal(t, []models.EmailAddress{{Email: "jd@example.com"}}, stored.EmailAddress)
	events.AssertExpectations(t)
}

func TestAuthService_SignupTwiceKeepsFirstUser(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewMemoryRepository[models.User]()
	authService := newAuthService(t, repo, nil)

	require.NoError(t, authService.Signup(ctx, services.SignupInput{UserName: "sam", Password: "first"}))
	before, err := repo.FindOne(ctx, "userName", "sam")
	require.NoError(t, err)

	err = authService.Signup(ctx, services.SignupInput{UserName: "sam", Password: "second"})
	assert.ErrorIs(t, err, services.ErrUsernameTaken)

	after, err := repo.FindOne(ctx, "userName", "sam")
	require.NoError(t, err)
	assert.Equal(t, before, after)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestAuthService_SignupUsesConfiguredCost(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewMemoryRepository[models.User]()
	authService, err := services.NewAuthService(repo, services.DefaultHashCost, nil)
	require.NoError(t, err)

	require.NoError(t, authService.Signup(ctx, services.SignupInput{UserName: "cost", Password: "pw"}))
	stored, err := repo.FindOne(ctx, "userName", "cost")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(stored.Password))
	require.NoError(t, err)
	assert.Equal(t, services.DefaultHashCost, cost)
}

func TestNewAuthService_RejectsInvalidCost(t *testing.T) {
	_, err := services.NewAuthService(repositories.NewMemoryRepository[models.User](), 99, nil)
	assert.Error(t, err)
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewMemoryRepository[models.User]()
	authService := newAuthService(t, repo, nil)
	require.NoError(t, authService.Signup(ctx, services.SignupInput{UserName: "testuser", Password: "password123"}))

	// Test successful login
	assert.NoError(t, authService.Login(ctx, "testuser", "password123"))

	// Wrong password and unknown user must be indistinguishable
	wrongPassword := authService.Login(ctx, "testuser", "wrongpassword")
	unknownUser := authService.Login(ctx, "nonexistentuser", "password123")
	assert.ErrorIs(t, wrongPassword, services.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, services.ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
}

func TestAuthService_StoreFaultIsNotAuthFailure(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockRepository[models.User])
	authService := newAuthService(t, mockRepo, nil)

	fault := &repositories.StoreError{Op: "findOne", Collection: "users", Err: fmt.Errorf("connection refused")}
	mockRepo.On("FindOne", mock.Anything, "userName", "bob").Return(nil, fault).Twice()

	err := authService.Login(ctx, "bob", "pw")
	assert.Error(t, err)
	assert.False(t, errors.Is(err, services.ErrInvalidCredentials))
	assert.True(t, repositories.IsStoreFault(err))

	err = authService.Signup(ctx, services.SignupInput{UserName: "bob", Password: "pw"})
	assert.False(t, errors.Is(err, services.ErrUsernameTaken))
	assert.True(t, repositories.IsStoreFault(err))
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}
