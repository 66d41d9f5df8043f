package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"contactbook/internal/logging"
	"contactbook/internal/places"
	"contactbook/internal/store"
)

// ContactService captures the contact operations needed by the HTTP
// handlers.
type ContactService interface {
	Insert(ctx context.Context, contact store.Contact) (int64, error)
	Update(ctx context.Context, id int64, contact store.Contact) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	List(ctx context.Context) ([]store.ContactSummary, error)
	Search(ctx context.Context, filter store.SearchFilter) ([]store.Contact, error)
}

// PlaceSearcher performs text searches against the places service.
type PlaceSearcher interface {
	TextSearch(ctx context.Context, req places.SearchRequest) (*places.SearchResult, error)
}

// Server wires HTTP handlers to the underlying services.
type Server struct {
	contacts ContactService
	places   PlaceSearcher
}

// New configures a Server with the given services.
func New(contacts ContactService, places PlaceSearcher) *Server {
	return &Server{
		contacts: contacts,
		places:   places,
	}
}

// Routes exposes the HTTP handlers for contact management and place lookup.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("POST /api/v1/contacts", s.handleInsertContact)
	mux.HandleFunc("GET /api/v1/contacts", s.handleListContacts)
	mux.HandleFunc("GET /api/v1/contacts/search", s.handleSearchContacts)
	mux.HandleFunc("PUT /api/v1/contacts/{id}", s.handleUpdateContact)
	mux.HandleFunc("DELETE /api/v1/contacts/{id}", s.handleDeleteContact)

	mux.HandleFunc("GET /api/v1/places/search", s.handleSearchPlaces)

	return mux
}

type errorResponse struct {
	Error string `json:"error"`
}

// serverError logs the failure with the request ID before answering 500.
func serverError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	logging.WithContext(r.Context()).Error().Err(err).Msg(msg)
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}
