package models

// Book represents a single record in the catalog. OwnerID references the
// user that created the book and gates update/delete.
type Book struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	Genre         string `json:"genre"`
	PublishedYear int    `json:"publishedYear"`
	OwnerID       string `json:"ownerId"`
}
