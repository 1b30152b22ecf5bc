// Package store holds the persistence layer. Each collection is an ordered
// sequence of records loaded and saved wholesale; services read the full
// collection, modify it in memory, and write it back. Backends implement the
// same two-method contract so the storage engine can be swapped without
// touching service logic.
package store

import "github.com/avelaro/bookstore-be/internal/models"

// UserStore persists the users collection.
type UserStore interface {
	LoadAll() ([]models.User, error)
	SaveAll([]models.User) error
}

// BookStore persists the books collection.
type BookStore interface {
	LoadAll() ([]models.Book, error)
	SaveAll([]models.Book) error
}
