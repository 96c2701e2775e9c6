package repository

import (
	"context"

	"github.com/dom/notes-website/internal/domain"
	"github.com/google/uuid"
)

type UserRepository interface {
	// Create persists the user and its credential atomically.
	Create(ctx context.Context, user *domain.User, credential *domain.Credential) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// GetByEmailWithCredential is the login verification path; every other
	// read leaves the credential behind in the database.
	GetByEmailWithCredential(ctx context.Context, email string) (*domain.User, *domain.Credential, error)
	DeleteByEmail(ctx context.Context, email string) error
}

type NoteRepository interface {
	Create(ctx context.Context, note *domain.Note) error
	// GetByID is scoped to the owning user; a note belonging to someone
	// else behaves exactly like a missing note.
	GetByID(ctx context.Context, id, userID uuid.UUID) (*domain.Note, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Note, error)
	Delete(ctx context.Context, id, userID uuid.UUID) (int64, error)
}

type Repositories struct {
	User UserRepository
	Note NoteRepository
}
