package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/avelaro/bookstore-be/internal/auth"
	"github.com/avelaro/bookstore-be/internal/services"
)

// BookHandler handles HTTP requests for the book catalog.
type BookHandler struct {
	service services.BookServiceProvider
}

// NewBookHandler creates a new BookHandler.
func NewBookHandler(service services.BookServiceProvider) *BookHandler {
	return &BookHandler{service: service}
}

// GetAll handles the request to list every book.
func (h *BookHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.ListAll()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, books)
}

// Get handles the request to get a single book by its ID.
func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	book, err := h.service.GetByID(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, book)
}

// Search handles the unauthenticated genre search.
func (h *BookHandler) Search(w http.ResponseWriter, r *http.Request) {
	genre := r.URL.Query().Get("genre")
	if genre == "" {
		writeMessage(w, http.StatusBadRequest, "Genre query parameter is required")
		return
	}

	books, err := h.service.SearchByGenre(genre)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, books)
}

// Create handles the request to add a new book owned by the caller.
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		log.Error().Msg("Could not retrieve user claims from context")
		writeMessage(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	var input services.BookInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	book, err := h.service.Add(input, claims.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, book)
}

// Update handles the request to patch a book's mutable fields.
func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		log.Error().Msg("Could not retrieve user claims from context")
		writeMessage(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	var patch services.BookPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id := chi.URLParam(r, "id")
	book, err := h.service.Update(id, claims.UserID, patch)
	if err != nil {
		if errors.Is(err, services.ErrNotOwner) {
			writeMessage(w, http.StatusForbidden, "Not authorized to update this book")
			return
		}
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, book)
}

// Delete handles the request to remove a book.
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		log.Error().Msg("Could not retrieve user claims from context")
		writeMessage(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.service.Delete(id, claims.UserID); err != nil {
		if errors.Is(err, services.ErrNotOwner) {
			writeMessage(w, http.StatusForbidden, "Not authorized to delete this book")
			return
		}
		writeServiceError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Book deleted")
}
