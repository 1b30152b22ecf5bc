package store

import (
	"database/sql"

	"github.com/avelaro/bookstore-be/internal/models"
	_ "modernc.org/sqlite" // SQLite driver
)

// OpenSQLite creates a database connection pool and sets up the schema.
func OpenSQLite(dataSourceName string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if err = migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func migrate(db *sql.DB) error {
	const sqlStmt = `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT NOT NULL PRIMARY KEY,
		email TEXT UNIQUE,
		password_hash TEXT
	);

	CREATE TABLE IF NOT EXISTS books (
		id TEXT NOT NULL PRIMARY KEY,
		title TEXT,
		author TEXT,
		genre TEXT,
		published_year INTEGER,
		owner_id TEXT
	);
	`
	_, err := db.Exec(sqlStmt)
	return err
}

// SQLiteUserStore persists the users collection in a SQLite table. SaveAll
// replaces the table contents inside a transaction; LoadAll selects in rowid
// order so insertion order is preserved across the replace.
type SQLiteUserStore struct {
	db *sql.DB
}

// NewSQLiteUserStore creates a user store over an open SQLite handle.
func NewSQLiteUserStore(db *sql.DB) *SQLiteUserStore {
	return &SQLiteUserStore{db: db}
}

func (s *SQLiteUserStore) LoadAll() ([]models.User, error) {
	rows, err := s.db.Query("SELECT id, email, password_hash FROM users ORDER BY rowid")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Email, &u.PasswordHash); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (s *SQLiteUserStore) SaveAll(users []models.User) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM users"); err != nil {
		return err
	}
	stmt, err := tx.Prepare("INSERT INTO users(id, email, password_hash) VALUES(?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, u := range users {
		if _, err := stmt.Exec(u.ID, u.Email, u.PasswordHash); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// SQLiteBookStore persists the books collection in a SQLite table.
type SQLiteBookStore struct {
	db *sql.DB
}

// NewSQLiteBookStore creates a book store over an open SQLite handle.
func NewSQLiteBookStore(db *sql.DB) *SQLiteBookStore {
	return &SQLiteBookStore{db: db}
}

func (s *SQLiteBookStore) LoadAll() ([]models.Book, error) {
	rows, err := s.db.Query("SELECT id, title, author, genre, published_year, owner_id FROM books ORDER BY rowid")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	books := []models.Book{}
	for rows.Next() {
		var b models.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.Genre, &b.PublishedYear, &b.OwnerID); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

func (s *SQLiteBookStore) SaveAll(books []models.Book) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM books"); err != nil {
		return err
	}
	stmt, err := tx.Prepare("INSERT INTO books(id, title, author, genre, published_year, owner_id) VALUES(?, ?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, b := range books {
		if _, err := stmt.Exec(b.ID, b.Title, b.Author, b.Genre, b.PublishedYear, b.OwnerID); err != nil {
			return err
		}
	}
	return tx.Commit()
}
