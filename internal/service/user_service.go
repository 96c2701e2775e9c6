package service

import (
	"context"
	"errors"
	"time"

	"github.com/dom/notes-website/internal/domain"
	"github.com/dom/notes-website/internal/repository"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailExists        = errors.New("email already in use")
	ErrUserNotFound       = errors.New("user not found")
)

// UserService owns user records and their credentials. Password hashes
// never leave this package: every returned user is hash-free.
type UserService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) Create(ctx context.Context, email, password string) (*domain.User, error) {
	// Check if email is taken
	existing, err := s.users.GetByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:        uuid.New(),
		Email:     email,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	credential := &domain.Credential{
		UserID: user.ID,
		Hash:   string(hash),
	}

	if err := s.users.Create(ctx, user, credential); err != nil {
		return nil, err
	}

	return user, nil
}

// VerifyLogin checks the password against the stored bcrypt hash.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *UserService) VerifyLogin(ctx context.Context, email, password string) (*domain.User, error) {
	user, credential, err := s.users.GetByEmailWithCredential(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(credential.Hash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// DeleteByEmail removes the user; the credential and the user's notes
// go with it via the cascade constraints.
func (s *UserService) DeleteByEmail(ctx context.Context, email string) error {
	err := s.users.DeleteByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUserNotFound
	}
	return err
}
