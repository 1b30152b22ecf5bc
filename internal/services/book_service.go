package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/avelaro/bookstore-be/internal/models"
	"github.com/avelaro/bookstore-be/internal/store"
)

// BookInput carries the caller-supplied fields for a new book. Fields are
// stored as sent; there is no validation beyond what the caller provides.
type BookInput struct {
	Title         string `json:"title"`
	Author        string `json:"author"`
	Genre         string `json:"genre"`
	PublishedYear int    `json:"publishedYear"`
}

// BookPatch is the whitelist of fields a PUT may change. Absent fields leave
// the record untouched; id and ownerId are not patchable.
type BookPatch struct {
	Title         *string `json:"title"`
	Author        *string `json:"author"`
	Genre         *string `json:"genre"`
	PublishedYear *int    `json:"publishedYear"`
}

// BookServiceProvider defines the interface for book catalog services.
type BookServiceProvider interface {
	ListAll() ([]models.Book, error)
	GetByID(id string) (models.Book, error)
	SearchByGenre(genre string) ([]models.Book, error)
	Add(input BookInput, ownerID string) (models.Book, error)
	Update(id, ownerID string, patch BookPatch) (models.Book, error)
	Delete(id, ownerID string) error
}

// BookService provides CRUD and genre search over the book collection,
// enforcing ownership on mutations.
type BookService struct {
	books store.BookStore
}

// NewBookService creates a new BookService.
func NewBookService(books store.BookStore) *BookService {
	return &BookService{books: books}
}

// ListAll returns the full collection in insertion order.
func (s *BookService) ListAll() ([]models.Book, error) {
	return s.books.LoadAll()
}

// GetByID retrieves a single book. Reads are not ownership-filtered.
func (s *BookService) GetByID(id string) (models.Book, error) {
	books, err := s.books.LoadAll()
	if err != nil {
		return models.Book{}, fmt.Errorf("loading books: %w", err)
	}
	for _, b := range books {
		if b.ID == id {
			return b, nil
		}
	}
	return models.Book{}, ErrBookNotFound
}

// SearchByGenre returns books whose genre matches case-insensitively. An
// empty match is an empty slice, not an error.
func (s *BookService) SearchByGenre(genre string) ([]models.Book, error) {
	books, err := s.books.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("loading books: %w", err)
	}

	matched := []models.Book{}
	for _, b := range books {
		if strings.EqualFold(b.Genre, genre) {
			matched = append(matched, b)
		}
	}
	return matched, nil
}

// Add creates a book owned by ownerID and appends it to the collection.
func (s *BookService) Add(input BookInput, ownerID string) (models.Book, error) {
	books, err := s.books.LoadAll()
	if err != nil {
		return models.Book{}, fmt.Errorf("loading books: %w", err)
	}

	book := models.Book{
		ID:            uuid.New().String(),
		Title:         input.Title,
		Author:        input.Author,
		Genre:         input.Genre,
		PublishedYear: input.PublishedYear,
		OwnerID:       ownerID,
	}

	books = append(books, book)
	if err := s.books.SaveAll(books); err != nil {
		return models.Book{}, fmt.Errorf("saving books: %w", err)
	}
	return book, nil
}

// Update applies the patch to the book with the given id. Only the owner may
// update; the not-found check runs before the ownership check.
func (s *BookService) Update(id, ownerID string, patch BookPatch) (models.Book, error) {
	books, err := s.books.LoadAll()
	if err != nil {
		return models.Book{}, fmt.Errorf("loading books: %w", err)
	}

	for i, b := range books {
		if b.ID != id {
			continue
		}
		if b.OwnerID != ownerID {
			return models.Book{}, ErrNotOwner
		}

		if patch.Title != nil {
			b.Title = *patch.Title
		}
		if patch.Author != nil {
			b.Author = *patch.Author
		}
		if patch.Genre != nil {
			b.Genre = *patch.Genre
		}
		if patch.PublishedYear != nil {
			b.PublishedYear = *patch.PublishedYear
		}

		books[i] = b
		if err := s.books.SaveAll(books); err != nil {
			return models.Book{}, fmt.Errorf("saving books: %w", err)
		}
		return b, nil
	}
	return models.Book{}, ErrBookNotFound
}

// Delete removes the book with the given id if ownerID owns it.
func (s *BookService) Delete(id, ownerID string) error {
	books, err := s.books.LoadAll()
	if err != nil {
		return fmt.Errorf("loading books: %w", err)
	}

	for i, b := range books {
		if b.ID != id {
			continue
		}
		if b.OwnerID != ownerID {
			return ErrNotOwner
		}

		books = append(books[:i], books[i+1:]...)
		if err := s.books.SaveAll(books); err != nil {
			return fmt.Errorf("saving books: %w", err)
		}
		return nil
	}
	return ErrBookNotFound
}
