package store

import (
	"fmt"
	"strings"
)

// Fixed statement templates for the contacts table. Every user-supplied
// value travels through a positional placeholder, never string
// interpolation.
const (
	sqlVersion = `SELECT version()`

	sqlCreateTable = `
		CREATE TABLE IF NOT EXISTS contacts (
			contact_id SERIAL PRIMARY KEY,
			name VARCHAR(25) NOT NULL,
			lastname VARCHAR(25) NOT NULL,
			phone VARCHAR(25),
			direction VARCHAR(150),
			email VARCHAR(50),
			web VARCHAR(150)
		)`

	sqlInsertContact = `
		INSERT INTO contacts (name, lastname, phone, direction, email, web)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING contact_id`

	sqlUpdateContact = `
		UPDATE contacts
		SET name = $1, lastname = $2, phone = $3, direction = $4, email = $5, web = $6
		WHERE contact_id = $7`

	sqlDeleteContact = `
		DELETE FROM contacts
		WHERE contact_id = $1`

	sqlListContacts = `
		SELECT contact_id, name, lastname
		FROM contacts`

	sqlSelectContacts = `
		SELECT contact_id, name, lastname, phone, direction, email, web
		FROM contacts`

	sqlSortContacts = ` ORDER BY name ASC, lastname ASC`
)

// SearchFilter narrows a contact search. An empty filter matches nothing:
// the filtered path never degrades to a full-table select.
type SearchFilter struct {
	Name      string
	Direction string
	Email     string
}

// buildSearchQuery assembles the filtered select for the present filter
// fields: name exact, direction substring (case-sensitive), email exact,
// AND-joined, with the fixed name/lastname ascending sort. Reports ok=false
// when no filter field is set.
func buildSearchQuery(filter SearchFilter) (string, []any, bool) {
	var (
		clauses []string
		args    []any
	)

	if name := strings.TrimSpace(filter.Name); name != "" {
		args = append(args, name)
		clauses = append(clauses, fmt.Sprintf("name = $%d", len(args)))
	}
	if direction := strings.TrimSpace(filter.Direction); direction != "" {
		args = append(args, "%"+direction+"%")
		clauses = append(clauses, fmt.Sprintf("direction LIKE $%d", len(args)))
	}
	if email := strings.TrimSpace(filter.Email); email != "" {
		args = append(args, email)
		clauses = append(clauses, fmt.Sprintf("email = $%d", len(args)))
	}

	if len(clauses) == 0 {
		return "", nil, false
	}

	query := sqlSelectContacts + " WHERE " + strings.Join(clauses, " AND ") + sqlSortContacts
	return query, args, true
}
