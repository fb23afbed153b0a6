package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/JojerDojer/web-420/internal/models"
	"github.com/JojerDojer/web-420/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// DefaultHashCost is the bcrypt cost used when none is configured.
const DefaultHashCost = 10

// AuthService handles signup and login against the users collection.
type AuthService struct {
	userRepo  repositories.Repository[models.User]
	hashCost  int
	dummyHash []byte
	events    EventPublisher
}

// NewAuthService creates a new AuthService. hashCost must stay the same for
// every signup in a deployment.
func NewAuthService(userRepo repositories.Repository[models.User], hashCost int, events EventPublisher) (*AuthService, error) {
	if hashCost < bcrypt.MinCost || hashCost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost %d outside [%d, %d]", hashCost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	// Compared against on unknown usernames so both failures cost one bcrypt run.
	dummy, err := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), hashCost)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare dummy hash: %w", err)
	}
	return &AuthService{
		userRepo:  userRepo,
		hashCost:  hashCost,
		dummyHash: dummy,
		events:    events,
	}, nil
}

// SignupInput holds the signup request fields.
type SignupInput struct {
	UserName     string
	Password     string
	EmailAddress []models.EmailAddress
}

// Signup registers a new user, storing only the password hash.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) error {
	_, err := s.userRepo.FindOne(ctx, "userName", in.UserName)
	if err == nil {
		return ErrUsernameTaken
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return fmt.Errorf("failed to look up user %s: %w", in.UserName, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.hashCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	emails := in.EmailAddress
	if emails == nil {
		emails = []models.EmailAddress{}
	}
	user := &models.User{
		UserName:     in.UserName,
		Password:     string(hashed),
		EmailAddress: emails,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return fmt.Errorf("failed to register user: %w", err)
	}

	publish(ctx, s.events, EventUserRegistered, map[string]any{
		"id":       user.ID,
		"userName": user.UserName,
	})
	return nil
}

// Login checks a password against the stored hash. Unknown users and wrong
// passwords both yield ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, userName, password string) error {
	user, err := s.userRepo.FindOne(ctx, "userName", userName)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
			return ErrInvalidCredentials
		}
		return fmt.Errorf("failed to look up user %s: %w", userName, err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrInvalidCredentials
	}
	if err != nil {
		return fmt.Errorf("failed to verify password for %s: %w", userName, err)
	}
	return nil
}
