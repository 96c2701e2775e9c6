package postgres

import (
	"context"

	"github.com/dom/notes-website/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type noteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *noteRepository {
	return &noteRepository{db: db}
}

func (r *noteRepository) Create(ctx context.Context, note *domain.Note) error {
	return r.db.WithContext(ctx).Create(note).Error
}

func (r *noteRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*domain.Note, error) {
	var note domain.Note
	err := r.db.WithContext(ctx).
		First(&note, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *noteRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Note, error) {
	var notes []*domain.Note
	err := r.db.WithContext(ctx).
		Select("id", "title", "user_id", "updated_at").
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *noteRepository) Delete(ctx context.Context, id, userID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Delete(&domain.Note{}, "id = ? AND user_id = ?", id, userID)
	return res.RowsAffected, res.Error
}
