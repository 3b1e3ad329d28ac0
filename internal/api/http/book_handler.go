package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"bookshelf-backend/internal/domain"
	"bookshelf-backend/internal/service"

	"github.com/gorilla/mux"
)

const (
	defaultPageSize = 10
	maxCoverBytes   = 5 << 20
)

type BookHandler struct {
	books   service.BookService
	lending service.LendingService
}

func NewBookHandler(books service.BookService, lending service.LendingService) *BookHandler {
	return &BookHandler{
		books:   books,
		lending: lending,
	}
}

func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.BookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if req.Title == "" || req.AuthorName == "" {
		writeBadRequest(w, "title and author_name are required")
		return
	}
	id, err := h.books.Create(r.Context(), req, principalFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, id)
}

func (h *BookHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	bookID, ok := pathID(w, r)
	if !ok {
		return
	}
	book, err := h.books.GetByID(r.Context(), bookID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, book)
}

func (h *BookHandler) ListDisplayable(w http.ResponseWriter, r *http.Request) {
	page, size := pageParams(r)
	res, err := h.books.ListDisplayable(r.Context(), principalFrom(r), page, size)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *BookHandler) ListByOwner(w http.ResponseWriter, r *http.Request) {
	page, size := pageParams(r)
	res, err := h.books.ListByOwner(r.Context(), principalFrom(r), page, size)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *BookHandler) ListBorrowed(w http.ResponseWriter, r *http.Request) {
	page, size := pageParams(r)
	res, err := h.lending.ListBorrowed(r.Context(), principalFrom(r), page, size)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *BookHandler) ListReturned(w http.ResponseWriter, r *http.Request) {
	page, size := pageParams(r)
	res, err := h.lending.ListReturned(r.Context(), principalFrom(r), page, size)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *BookHandler) ToggleShareable(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.books.ToggleShareable)
}

func (h *BookHandler) ToggleArchived(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.books.ToggleArchived)
}

func (h *BookHandler) Borrow(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.lending.Borrow)
}

func (h *BookHandler) Return(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.lending.ReturnBook)
}

func (h *BookHandler) ApproveReturn(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.lending.ApproveReturn)
}

func (h *BookHandler) UploadCover(w http.ResponseWriter, r *http.Request) {
	bookID, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := r.ParseMultipartForm(maxCoverBytes); err != nil {
		writeBadRequest(w, "invalid multipart form")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeBadRequest(w, "missing file")
		return
	}
	defer file.Close()
	content, err := io.ReadAll(io.LimitReader(file, maxCoverBytes))
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.books.UploadCover(r.Context(), bookID, principalFrom(r), content, header.Filename); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, nil)
}

// toggle covers every "act on one book, answer with an id" endpoint.
func (h *BookHandler) toggle(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, bookID int32, p domain.Principal) (int32, error)) {
	bookID, ok := pathID(w, r)
	if !ok {
		return
	}
	id, err := op(r.Context(), bookID, principalFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, id)
}

func pathID(w http.ResponseWriter, r *http.Request) (int32, bool) {
	raw := mux.Vars(r)["book-id"]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		writeBadRequest(w, "invalid book id")
		return 0, false
	}
	return int32(id), true
}

func pageParams(r *http.Request) (int32, int32) {
	page := int32(0)
	size := int32(defaultPageSize)
	if raw := r.URL.Query().Get("page"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 32); err == nil && v >= 0 {
			page = int32(v)
		}
	}
	if raw := r.URL.Query().Get("size"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 32); err == nil && v > 0 && v <= 100 {
			size = int32(v)
		}
	}
	return page, size
}
