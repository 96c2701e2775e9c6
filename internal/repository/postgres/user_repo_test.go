package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/dom/notes-website/internal/domain"
	"github.com/dom/notes-website/internal/repository/postgres"
	"github.com/dom/notes-website/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newUserAndCredential(email string) (*domain.User, *domain.Credential) {
	user := &domain.User{
		ID:        uuid.New(),
		Email:     email,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	credential := &domain.Credential{
		UserID: user.ID,
		Hash:   "$2a$10$fakehashfakehashfakehash",
	}
	return user, credential
}

func TestUserRepository_Create(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(testDB.DB)
	ctx := context.Background()

	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{
			name:    "successful creation",
			email:   "create@example.com",
			wantErr: false,
		},
		{
			name:    "duplicate email",
			email:   "create@example.com", // Same as above
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, credential := newUserAndCredential(tt.email)
			err := repo.Create(ctx, user, credential)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestUserRepository_GetByID(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(testDB.DB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().
		WithEmail("getbyid@example.com").
		Build(t, testDB.DB)

	tests := []struct {
		name    string
		id      uuid.UUID
		want    *domain.User
		wantErr bool
	}{
		{
			name:    "existing user",
			id:      user.ID,
			want:    user,
			wantErr: false,
		},
		{
			name:    "non-existent user",
			id:      uuid.New(),
			want:    nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.GetByID(ctx, tt.id)
			if tt.wantErr {
				assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want.ID, got.ID)
			assert.Equal(t, tt.want.Email, got.Email)
		})
	}
}

func TestUserRepository_GetByEmailWithCredential(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(testDB.DB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().
		WithEmail("login@example.com").
		Build(t, testDB.DB)

	got, credential, err := repo.GetByEmailWithCredential(ctx, "login@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, user.ID, credential.UserID)
	assert.NotEmpty(t, credential.Hash)

	_, _, err = repo.GetByEmailWithCredential(ctx, "missing@example.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserRepository_DeleteByEmail(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(testDB.DB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().
		WithEmail("delete@example.com").
		Build(t, testDB.DB)
	testutil.NewNoteBuilder(user.ID).Build(t, testDB.DB)

	require.NoError(t, repo.DeleteByEmail(ctx, "delete@example.com"))

	_, err := repo.GetByID(ctx, user.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// Cascade removed the credential and the notes
	var credentials, notes int64
	require.NoError(t, testDB.DB.Table("credentials").Where("user_id = ?", user.ID).Count(&credentials).Error)
	require.NoError(t, testDB.DB.Table("notes").Where("user_id = ?", user.ID).Count(&notes).Error)
	assert.Zero(t, credentials)
	assert.Zero(t, notes)

	assert.ErrorIs(t, repo.DeleteByEmail(ctx, "delete@example.com"), gorm.ErrRecordNotFound)
}
