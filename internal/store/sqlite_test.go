package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avelaro/bookstore-be/internal/models"
)

func TestSQLiteStores_RoundTrip(t *testing.T) {
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer db.Close()

	users := NewSQLiteUserStore(db)
	books := NewSQLiteBookStore(db)

	wantUsers := []models.User{
		{ID: "u1", Email: "a@x.com", PasswordHash: "h1"},
		{ID: "u2", Email: "b@x.com", PasswordHash: "h2"},
	}
	require.NoError(t, users.SaveAll(wantUsers))

	gotUsers, err := users.LoadAll()
	require.NoError(t, err)
	require.Equal(t, wantUsers, gotUsers)

	wantBooks := []models.Book{
		{ID: "b2", Title: "Second", Author: "A", Genre: "SciFi", PublishedYear: 2001, OwnerID: "u2"},
		{ID: "b1", Title: "First", Author: "B", Genre: "Fantasy", PublishedYear: 1990, OwnerID: "u1"},
	}
	require.NoError(t, books.SaveAll(wantBooks))

	gotBooks, err := books.LoadAll()
	require.NoError(t, err)
	require.Equal(t, wantBooks, gotBooks, "insertion order must survive the replace")
}

func TestSQLiteBookStore_SaveAllReplaces(t *testing.T) {
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer db.Close()

	books := NewSQLiteBookStore(db)
	require.NoError(t, books.SaveAll([]models.Book{{ID: "b1"}, {ID: "b2"}}))
	require.NoError(t, books.SaveAll([]models.Book{{ID: "b3"}}))

	got, err := books.LoadAll()
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "b3", got[0].ID)
}
