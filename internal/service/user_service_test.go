package service_test

import (
	"context"
	"testing"

	"github.com/dom/notes-website/internal/repository/postgres"
	"github.com/dom/notes-website/internal/service"
	"github.com/dom/notes-website/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_Create(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	userService := service.NewUserService(repos.User)
	ctx := context.Background()

	tests := []struct {
		name    string
		email   string
		setup   func()
		wantErr error
	}{
		{
			name:  "successful signup",
			email: "new@example.com",
		},
		{
			name:  "duplicate email",
			email: "taken@example.com",
			setup: func() {
				testutil.NewUserBuilder().
					WithEmail("taken@example.com").
					Build(t, testDB.DB)
			},
			wantErr: service.ErrEmailExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testDB.Truncate(t)

			if tt.setup != nil {
				tt.setup()
			}

			user, err := userService.Create(ctx, tt.email, "password1")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.email, user.Email)

			// The stored credential is a bcrypt hash, never the plaintext
			_, credential, err := repos.User.GetByEmailWithCredential(ctx, tt.email)
			require.NoError(t, err)
			assert.NotEmpty(t, credential.Hash)
			assert.NotEqual(t, "password1", credential.Hash)
		})
	}
}

func TestUserService_VerifyLogin(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	userService := service.NewUserService(repos.User)
	ctx := context.Background()

	user, err := userService.Create(ctx, "a@b.com", "password1")
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{
			name:     "correct password",
			email:    "a@b.com",
			password: "password1",
		},
		{
			name:     "wrong password",
			email:    "a@b.com",
			password: "wrongpass",
			wantErr:  service.ErrInvalidCredentials,
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "password1",
			wantErr:  service.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := userService.VerifyLogin(ctx, tt.email, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, user.ID, got.ID)
			assert.Equal(t, user.Email, got.Email)
		})
	}
}

func TestUserService_DeleteByEmail(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	userService := service.NewUserService(repos.User)
	noteService := service.NewNoteService(repos.Note)
	ctx := context.Background()

	user, err := userService.Create(ctx, "gone@example.com", "password1")
	require.NoError(t, err)
	_, err = noteService.Create(ctx, user.ID, "title", "body")
	require.NoError(t, err)

	require.NoError(t, userService.DeleteByEmail(ctx, "gone@example.com"))

	// User, credential, and notes are all gone
	_, err = userService.GetByEmail(ctx, "gone@example.com")
	assert.ErrorIs(t, err, service.ErrUserNotFound)

	var credentials int64
	require.NoError(t, testDB.DB.Table("credentials").Where("user_id = ?", user.ID).Count(&credentials).Error)
	assert.Zero(t, credentials)

	var notes int64
	require.NoError(t, testDB.DB.Table("notes").Where("user_id = ?", user.ID).Count(&notes).Error)
	assert.Zero(t, notes)

	// Deleting again reports not found
	assert.ErrorIs(t, userService.DeleteByEmail(ctx, "gone@example.com"), service.ErrUserNotFound)
}
