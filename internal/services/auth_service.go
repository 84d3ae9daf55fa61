package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/adityasetu/health-assessment-api/internal/constants"
	"github.com/adityasetu/health-assessment-api/internal/models"
	"github.com/adityasetu/health-assessment-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken           = errors.New("email already exists")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrPasswordTooShort     = errors.New("password too short")
	ErrMissingField         = errors.New("missing required field")
	ErrAgeOutOfRange        = errors.New("age out of range")
	ErrUserNotFound         = errors.New("user not found")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// AuthService handles registration and authentication business logic.
type AuthService struct {
	userRepo repository.UserRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
	}
}

// RegisterInput represents the information to create a new user. Age, Gender
// and Location are optional.
type RegisterInput struct {
	Name     string
	Email    string
	Mobile   string
	Password string
	Age      *int
	Gender   string
	Location string
}

// Register validates the input and creates a new user. All validation runs
// before any persistence attempt; a taken email fails with ErrEmailTaken,
// distinct from generic validation failures.
func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	mobile := strings.TrimSpace(input.Mobile)

	if name == "" || email == "" || mobile == "" || input.Password == "" {
		return nil, ErrMissingField
	}
	if len(input.Password) < constants.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}
	if input.Age != nil && (*input.Age < constants.MinAge || *input.Age > constants.MaxAge) {
		return nil, ErrAgeOutOfRange
	}

	user := &models.User{
		Name:   name,
		Email:  email,
		Mobile: mobile,
		Age:    input.Age,
	}
	if gender := strings.TrimSpace(input.Gender); gender != "" {
		user.Gender = &gender
	}
	if location := strings.TrimSpace(input.Location); location != "" {
		user.Location = &location
	}

	if err := user.SetPassword(input.Password); err != nil {
		return nil, ErrFailedToHashPassword
	}

	// The unique index on email is the authoritative duplicate check, so two
	// concurrent registrations cannot both succeed.
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Authenticate verifies credentials and returns the matching user. Unknown
// email and wrong password both return ErrInvalidCredentials so account
// existence never leaks.
func (s *AuthService) Authenticate(email, password string) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}
