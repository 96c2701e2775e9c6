package service

import (
	"context"
	"errors"
	"time"

	"github.com/dom/notes-website/internal/domain"
	"github.com/dom/notes-website/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNoteNotFound = errors.New("note not found")

// NoteService scopes every operation to the owning user: another user's
// note is indistinguishable from a missing one.
type NoteService struct {
	notes repository.NoteRepository
}

func NewNoteService(notes repository.NoteRepository) *NoteService {
	return &NoteService{notes: notes}
}

func (s *NoteService) Create(ctx context.Context, userID uuid.UUID, title, body string) (*domain.Note, error) {
	note := &domain.Note{
		ID:        uuid.New(),
		Title:     title,
		Body:      body,
		UserID:    userID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.notes.Create(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *NoteService) Get(ctx context.Context, id, userID uuid.UUID) (*domain.Note, error) {
	note, err := s.notes.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, err
	}
	return note, nil
}

func (s *NoteService) List(ctx context.Context, userID uuid.UUID) ([]*domain.Note, error) {
	return s.notes.ListByUserID(ctx, userID)
}

func (s *NoteService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	deleted, err := s.notes.Delete(ctx, id, userID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrNoteNotFound
	}
	return nil
}
