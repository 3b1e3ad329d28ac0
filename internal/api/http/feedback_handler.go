package http

import (
	"encoding/json"
	"net/http"

	"bookshelf-backend/internal/domain"
	"bookshelf-backend/internal/service"
)

type FeedbackHandler struct {
	feedbacks service.FeedbackService
}

func NewFeedbackHandler(feedbacks service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbacks: feedbacks}
}

func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req domain.FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if req.BookID <= 0 {
		writeBadRequest(w, "book_id is required")
		return
	}
	if req.Note < 1 || req.Note > 5 {
		writeBadRequest(w, "note must be between 1 and 5")
		return
	}
	id, err := h.feedbacks.Submit(r.Context(), req, principalFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, id)
}

func (h *FeedbackHandler) ListByBook(w http.ResponseWriter, r *http.Request) {
	bookID, ok := pathID(w, r)
	if !ok {
		return
	}
	page, size := pageParams(r)
	res, err := h.feedbacks.ListByBook(r.Context(), bookID, principalFrom(r), page, size)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
