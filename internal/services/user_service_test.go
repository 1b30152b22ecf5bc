package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/avelaro/bookstore-be/internal/models"
)

// --- in-memory fakes shared by the service tests ---

type fakeUserStore struct {
	users []models.User
}

func (f *fakeUserStore) LoadAll() ([]models.User, error) {
	return append([]models.User(nil), f.users...), nil
}

func (f *fakeUserStore) SaveAll(users []models.User) error {
	f.users = append([]models.User(nil), users...)
	return nil
}

type fakeBookStore struct {
	books []models.Book
}

func (f *fakeBookStore) LoadAll() ([]models.Book, error) {
	return append([]models.Book(nil), f.books...), nil
}

func (f *fakeBookStore) SaveAll(books []models.Book) error {
	f.books = append([]models.Book(nil), books...)
	return nil
}

func TestRegister_HashesAndStores(t *testing.T) {
	store := &fakeUserStore{}
	s := NewUserService(store)

	user, err := s.Register("a@x.com", "p")
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.Equal(t, "a@x.com", user.Email)
	require.Empty(t, user.PasswordHash, "hash must not be echoed")

	require.Len(t, store.users, 1)
	stored := store.users[0]
	require.NotEqual(t, "p", stored.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("p")))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	store := &fakeUserStore{}
	s := NewUserService(store)

	_, err := s.Register("a@x.com", "p")
	require.NoError(t, err)

	_, err = s.Register("a@x.com", "other")
	require.ErrorIs(t, err, ErrDuplicateEmail)
	require.Len(t, store.users, 1, "at most one account per email")
}

func TestAuthenticate_Success(t *testing.T) {
	store := &fakeUserStore{}
	s := NewUserService(store)

	registered, err := s.Register("a@x.com", "p")
	require.NoError(t, err)

	user, err := s.Authenticate("a@x.com", "p")
	require.NoError(t, err)
	require.Equal(t, registered.ID, user.ID)
	require.Empty(t, user.PasswordHash)
}

func TestAuthenticate_WrongPasswordAndUnknownEmailLookAlike(t *testing.T) {
	store := &fakeUserStore{}
	s := NewUserService(store)

	_, err := s.Register("a@x.com", "p")
	require.NoError(t, err)

	_, wrongPass := s.Authenticate("a@x.com", "nope")
	_, unknown := s.Authenticate("nobody@x.com", "p")

	require.ErrorIs(t, wrongPass, ErrInvalidCredentials)
	require.ErrorIs(t, unknown, ErrInvalidCredentials)
	require.Equal(t, wrongPass, unknown, "failure modes must be indistinguishable")
}
