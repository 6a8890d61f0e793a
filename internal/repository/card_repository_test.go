package repository

import (
	"testing"

	"brainstorm-api/internal/models"
	"brainstorm-api/internal/testutil"

	"github.com/stretchr/testify/require"
)

func TestCardRepository_CreateAndList(t *testing.T) {
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	repo := NewCardRepository(db)

	card := models.Card{Text: "buy milk", ColumnName: "todo"}
	require.NoError(t, repo.Create(&card))
	require.NotZero(t, card.ID)

	cards, err := repo.List()
	require.NoError(t, err)
	require.Len(t, cards, 1)
	require.Equal(t, "buy milk", cards[0].Text)
	require.Equal(t, "todo", cards[0].ColumnName)
}

func TestCardRepository_List_EmptyBoard(t *testing.T) {
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	repo := NewCardRepository(db)

	cards, err := repo.List()
	require.NoError(t, err)
	require.NotNil(t, cards)
	require.Empty(t, cards)
}

func TestCardRepository_UpdateColumn_UnknownID(t *testing.T) {
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	repo := NewCardRepository(db)

	// Silent no-op: no such card, still no error.
	require.NoError(t, repo.UpdateColumn(42, "done"))
}

func TestCardRepository_Delete_UnknownID(t *testing.T) {
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	repo := NewCardRepository(db)

	require.NoError(t, repo.Delete(42))
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	repo := NewUserRepository(db)

	require.NoError(t, repo.Create(&models.User{Username: "alice", Password: "hash"}))
	err = repo.Create(&models.User{Username: "alice", Password: "hash2"})
	require.ErrorIs(t, err, ErrUsernameTaken)
}

func TestUserRepository_FindByUsername_NotFound(t *testing.T) {
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	repo := NewUserRepository(db)

	_, err = repo.FindByUsername("ghost")
	require.ErrorIs(t, err, ErrUserNotFound)
}
