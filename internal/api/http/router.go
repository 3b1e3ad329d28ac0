package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter wires the REST surface. Auth endpoints are public; everything
// else requires a valid Bearer token.
func NewRouter(auth *AuthHandler, books *BookHandler, feedbacks *FeedbackHandler, mw *AuthMiddleware) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/auth/register", auth.Register).Methods(http.MethodPost)
	r.HandleFunc("/auth/authenticate", auth.Authenticate).Methods(http.MethodPost)
	r.HandleFunc("/auth/activate-account", auth.ActivateAccount).Methods(http.MethodGet)

	api := r.NewRoute().Subrouter()
	api.Use(mw.RequireAuth)

	api.HandleFunc("/books", books.Create).Methods(http.MethodPost)
	api.HandleFunc("/books", books.ListDisplayable).Methods(http.MethodGet)
	api.HandleFunc("/books/owner", books.ListByOwner).Methods(http.MethodGet)
	api.HandleFunc("/books/borrowed", books.ListBorrowed).Methods(http.MethodGet)
	api.HandleFunc("/books/returned", books.ListReturned).Methods(http.MethodGet)
	api.HandleFunc("/books/{book-id:[0-9]+}", books.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/books/shareable/{book-id:[0-9]+}", books.ToggleShareable).Methods(http.MethodPatch)
	api.HandleFunc("/books/archived/{book-id:[0-9]+}", books.ToggleArchived).Methods(http.MethodPatch)
	api.HandleFunc("/books/borrow/{book-id:[0-9]+}", books.Borrow).Methods(http.MethodPost)
	api.HandleFunc("/books/borrow/return/{book-id:[0-9]+}", books.Return).Methods(http.MethodPatch)
	api.HandleFunc("/books/borrow/return/approve/{book-id:[0-9]+}", books.ApproveReturn).Methods(http.MethodPatch)
	api.HandleFunc("/books/cover/{book-id:[0-9]+}", books.UploadCover).Methods(http.MethodPost)

	api.HandleFunc("/feedbacks", feedbacks.Submit).Methods(http.MethodPost)
	api.HandleFunc("/feedbacks/book/{book-id:[0-9]+}", feedbacks.ListByBook).Methods(http.MethodGet)

	return r
}
