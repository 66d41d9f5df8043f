package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"contactbook/internal/store"
)

type contactRequest struct {
	Name      string `json:"name"`
	Lastname  string `json:"lastname"`
	Phone     string `json:"phone"`
	Direction string `json:"direction"`
	Email     string `json:"email"`
	Web       string `json:"web"`
}

func (r contactRequest) toContact() store.Contact {
	return store.Contact{
		Name:      r.Name,
		Lastname:  r.Lastname,
		Phone:     r.Phone,
		Direction: r.Direction,
		Email:     r.Email,
		Web:       r.Web,
	}
}

type insertResponse struct {
	ID int64 `json:"id"`
}

// rowsResponse reports the effect of an update or delete. Zero rows
// affected is the no-such-contact signal, delivered in a 200 body.
type rowsResponse struct {
	RowsAffected int64 `json:"rowsAffected"`
}

func (s *Server) handleInsertContact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}

	id, err := s.contacts.Insert(r.Context(), req.toContact())
	if err != nil {
		if errors.Is(err, store.ErrInvalidContact) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		serverError(w, r, err, "insert contact failed")
		return
	}

	writeJSON(w, http.StatusCreated, insertResponse{ID: id})
}

func (s *Server) handleUpdateContact(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid contact id"})
		return
	}

	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}

	rows, err := s.contacts.Update(r.Context(), id, req.toContact())
	if err != nil {
		if errors.Is(err, store.ErrInvalidContact) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		serverError(w, r, err, "update contact failed")
		return
	}

	writeJSON(w, http.StatusOK, rowsResponse{RowsAffected: rows})
}

func (s *Server) handleDeleteContact(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid contact id"})
		return
	}

	rows, err := s.contacts.Delete(r.Context(), id)
	if err != nil {
		serverError(w, r, err, "delete contact failed")
		return
	}

	writeJSON(w, http.StatusOK, rowsResponse{RowsAffected: rows})
}

func (s *Server) handleListContacts(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.contacts.List(r.Context())
	if err != nil {
		serverError(w, r, err, "list contacts failed")
		return
	}
	if summaries == nil {
		summaries = []store.ContactSummary{}
	}

	writeJSON(w, http.StatusOK, struct {
		Contacts []store.ContactSummary `json:"contacts"`
	}{Contacts: summaries})
}

func (s *Server) handleSearchContacts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := store.SearchFilter{
		Name:      query.Get("name"),
		Direction: query.Get("direction"),
		Email:     query.Get("email"),
	}

	contacts, err := s.contacts.Search(r.Context(), filter)
	if err != nil {
		serverError(w, r, err, "search contacts failed")
		return
	}
	if contacts == nil {
		contacts = []store.Contact{}
	}

	writeJSON(w, http.StatusOK, struct {
		Contacts []store.Contact `json:"contacts"`
	}{Contacts: contacts})
}
