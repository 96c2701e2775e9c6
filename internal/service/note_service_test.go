package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/dom/notes-website/internal/repository/postgres"
	"github.com/dom/notes-website/internal/service"
	"github.com/dom/notes-website/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteService_CreateAndGet(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	noteService := service.NewNoteService(repos.Note)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	other, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	note, err := noteService.Create(ctx, owner.ID, "groceries", "milk, eggs")
	require.NoError(t, err)

	t.Run("owner can read", func(t *testing.T) {
		got, err := noteService.Get(ctx, note.ID, owner.ID)
		require.NoError(t, err)
		assert.Equal(t, "groceries", got.Title)
		assert.Equal(t, "milk, eggs", got.Body)
	})

	t.Run("other user sees not found", func(t *testing.T) {
		_, err := noteService.Get(ctx, note.ID, other.ID)
		assert.ErrorIs(t, err, service.ErrNoteNotFound)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := noteService.Get(ctx, uuid.New(), owner.ID)
		assert.ErrorIs(t, err, service.ErrNoteNotFound)
	})
}

func TestNoteService_List(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	noteService := service.NewNoteService(repos.Note)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	other, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	first, err := noteService.Create(ctx, owner.ID, "first", "body")
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	second, err := noteService.Create(ctx, owner.ID, "second", "body")
	require.NoError(t, err)
	_, err = noteService.Create(ctx, other.ID, "not mine", "body")
	require.NoError(t, err)

	notes, err := noteService.List(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, notes, 2)

	// Most recently updated first
	assert.Equal(t, second.ID, notes[0].ID)
	assert.Equal(t, first.ID, notes[1].ID)
}

func TestNoteService_Delete(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	noteService := service.NewNoteService(repos.Note)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	other, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	note, err := noteService.Create(ctx, owner.ID, "to delete", "body")
	require.NoError(t, err)

	t.Run("other user cannot delete", func(t *testing.T) {
		assert.ErrorIs(t, noteService.Delete(ctx, note.ID, other.ID), service.ErrNoteNotFound)
	})

	t.Run("owner deletes", func(t *testing.T) {
		require.NoError(t, noteService.Delete(ctx, note.ID, owner.ID))
		_, err := noteService.Get(ctx, note.ID, owner.ID)
		assert.ErrorIs(t, err, service.ErrNoteNotFound)
	})

	t.Run("delete twice reports not found", func(t *testing.T) {
		assert.ErrorIs(t, noteService.Delete(ctx, note.ID, owner.ID), service.ErrNoteNotFound)
	})
}
