package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"contactbook/internal/logging"
	"contactbook/internal/validate"
)

// Contact models one person's details. The identifier is assigned by the
// store on insert and never changes afterwards.
type Contact struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Lastname  string `json:"lastname"`
	Phone     string `json:"phone,omitempty"`
	Direction string `json:"direction,omitempty"`
	Email     string `json:"email,omitempty"`
	Web       string `json:"web,omitempty"`
}

// ContactSummary is the short listing row: identifier plus names.
type ContactSummary struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Lastname string `json:"lastname"`
}

// Insert validates and stores a new contact, returning its identifier.
// Optional fields that fail validation are dropped before the insert;
// a missing or invalid name or lastname rejects the record.
func (s *Store) Insert(ctx context.Context, contact Contact) (int64, error) {
	args, err := contactArgs(contact)
	if err != nil {
		return 0, err
	}

	var id int64
	start := time.Now()
	err = s.db.QueryRowContext(ctx, sqlInsertContact, args...).Scan(&id)
	logging.DBQuery(sqlInsertContact, time.Since(start), err)
	if err != nil {
		if isConstraintViolation(err) {
			return 0, fmt.Errorf("%w: %v", ErrInvalidContact, err)
		}
		return 0, fmt.Errorf("insert contact: %w", err)
	}
	return id, nil
}

// Update replaces every field of the contact with the given identifier and
// returns the number of rows affected; zero means no such contact.
func (s *Store) Update(ctx context.Context, id int64, contact Contact) (int64, error) {
	args, err := contactArgs(contact)
	if err != nil {
		return 0, err
	}
	args = append(args, id)

	start := time.Now()
	result, err := s.db.ExecContext(ctx, sqlUpdateContact, args...)
	logging.DBQuery(sqlUpdateContact, time.Since(start), err)
	if err != nil {
		if isConstraintViolation(err) {
			return 0, fmt.Errorf("%w: %v", ErrInvalidContact, err)
		}
		return 0, fmt.Errorf("update contact: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("update contact: %w", err)
	}
	return rows, nil
}

// Delete removes the contact with the given identifier and returns the
// number of rows affected; zero means no such contact.
func (s *Store) Delete(ctx context.Context, id int64) (int64, error) {
	start := time.Now()
	result, err := s.db.ExecContext(ctx, sqlDeleteContact, id)
	logging.DBQuery(sqlDeleteContact, time.Since(start), err)
	if err != nil {
		return 0, fmt.Errorf("delete contact: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete contact: %w", err)
	}
	return rows, nil
}

// List returns every contact's identifier and names in storage order.
func (s *Store) List(ctx context.Context) ([]ContactSummary, error) {
	start := time.Now()
	rows, err := s.db.QueryContext(ctx, sqlListContacts)
	logging.DBQuery(sqlListContacts, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("select contacts: %w", err)
	}
	defer rows.Close()

	var summaries []ContactSummary
	for rows.Next() {
		var summary ContactSummary
		if err := rows.Scan(&summary.ID, &summary.Name, &summary.Lastname); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contacts: %w", err)
	}

	return summaries, nil
}

// Search returns the contacts matching the filter, sorted by name then
// lastname ascending. An empty filter yields no rows without touching the
// database.
func (s *Store) Search(ctx context.Context, filter SearchFilter) ([]Contact, error) {
	query, args, ok := buildSearchQuery(filter)
	if !ok {
		return nil, nil
	}

	start := time.Now()
	rows, err := s.db.QueryContext(ctx, query, args...)
	logging.DBQuery(query, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("select contacts: %w", err)
	}
	defer rows.Close()

	var contacts []Contact
	for rows.Next() {
		contact, err := scanContactRow(rows)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, contact)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contacts: %w", err)
	}

	return contacts, nil
}

// contactArgs runs validation over the raw fields and produces the insert
// and update argument list, with NULL for absent optional fields.
func contactArgs(contact Contact) ([]any, error) {
	cleaned, err := validate.Contact(map[string]string{
		validate.FieldName:      strings.TrimSpace(contact.Name),
		validate.FieldLastname:  strings.TrimSpace(contact.Lastname),
		validate.FieldPhone:     strings.TrimSpace(contact.Phone),
		validate.FieldDirection: strings.TrimSpace(contact.Direction),
		validate.FieldEmail:     strings.TrimSpace(contact.Email),
		validate.FieldWeb:       strings.TrimSpace(contact.Web),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidContact, err)
	}

	return []any{
		cleaned[validate.FieldName],
		cleaned[validate.FieldLastname],
		nullIfEmpty(cleaned[validate.FieldPhone]),
		nullIfEmpty(cleaned[validate.FieldDirection]),
		nullIfEmpty(cleaned[validate.FieldEmail]),
		nullIfEmpty(cleaned[validate.FieldWeb]),
	}, nil
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}

type contactScanner interface {
	Scan(dest ...any) error
}

func scanContactRow(scanner contactScanner) (Contact, error) {
	var (
		contact   Contact
		phone     sql.NullString
		direction sql.NullString
		email     sql.NullString
		web       sql.NullString
	)

	if err := scanner.Scan(&contact.ID, &contact.Name, &contact.Lastname, &phone, &direction, &email, &web); err != nil {
		return Contact{}, fmt.Errorf("scan contact: %w", err)
	}

	contact.Phone = phone.String
	contact.Direction = direction.String
	contact.Email = email.String
	contact.Web = web.String

	return contact, nil
}
