package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/avelaro/bookstore-be/internal/models"
)

// jsonFile is one collection backed by a JSON array on disk. The mutex
// serializes whole load-modify-save sequences within the process so two
// concurrent writers cannot silently drop each other's changes.
type jsonFile struct {
	mu   sync.Mutex
	path string
}

// read decodes the backing file into v. A missing, empty, or corrupt file is
// treated as an empty collection; the caller never sees an error for it.
func (f *jsonFile) read(v any) {
	data, err := os.ReadFile(f.path)
	if err != nil || len(data) == 0 {
		return
	}
	if err := json.Unmarshal(data, v); err != nil {
		return
	}
}

// write replaces the file contents with v, pretty-printed.
func (f *jsonFile) write(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, data, 0644)
}

// userRecord is the on-disk shape of a user. The hash is persisted under
// "password" but never leaves the store in that form.
type userRecord struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// JSONUserStore persists users as a JSON array in a single file.
type JSONUserStore struct {
	file jsonFile
}

// NewJSONUserStore creates a user store backed by users.json under dataDir.
func NewJSONUserStore(dataDir string) *JSONUserStore {
	return &JSONUserStore{file: jsonFile{path: filepath.Join(dataDir, "users.json")}}
}

func (s *JSONUserStore) LoadAll() ([]models.User, error) {
	s.file.mu.Lock()
	defer s.file.mu.Unlock()

	var records []userRecord
	s.file.read(&records)

	users := make([]models.User, 0, len(records))
	for _, r := range records {
		users = append(users, models.User{ID: r.ID, Email: r.Email, PasswordHash: r.Password})
	}
	return users, nil
}

func (s *JSONUserStore) SaveAll(users []models.User) error {
	s.file.mu.Lock()
	defer s.file.mu.Unlock()

	records := make([]userRecord, 0, len(users))
	for _, u := range users {
		records = append(records, userRecord{ID: u.ID, Email: u.Email, Password: u.PasswordHash})
	}
	return s.file.write(records)
}

// JSONBookStore persists books as a JSON array in a single file.
type JSONBookStore struct {
	file jsonFile
}

// NewJSONBookStore creates a book store backed by books.json under dataDir.
func NewJSONBookStore(dataDir string) *JSONBookStore {
	return &JSONBookStore{file: jsonFile{path: filepath.Join(dataDir, "books.json")}}
}

func (s *JSONBookStore) LoadAll() ([]models.Book, error) {
	s.file.mu.Lock()
	defer s.file.mu.Unlock()

	books := []models.Book{}
	s.file.read(&books)
	return books, nil
}

func (s *JSONBookStore) SaveAll(books []models.Book) error {
	s.file.mu.Lock()
	defer s.file.mu.Unlock()

	if books == nil {
		books = []models.Book{}
	}
	return s.file.write(books)
}
