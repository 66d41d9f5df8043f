package contacts

import (
	"context"

	"contactbook/internal/store"
)

// Store defines the persistence operations behind the contact service.
type Store interface {
	Insert(ctx context.Context, contact store.Contact) (int64, error)
	Update(ctx context.Context, id int64, contact store.Contact) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	List(ctx context.Context) ([]store.ContactSummary, error)
	Search(ctx context.Context, filter store.SearchFilter) ([]store.Contact, error)
}

// Service coordinates contact operations.
type Service interface {
	Insert(ctx context.Context, contact store.Contact) (int64, error)
	Update(ctx context.Context, id int64, contact store.Contact) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	List(ctx context.Context) ([]store.ContactSummary, error)
	Search(ctx context.Context, filter store.SearchFilter) ([]store.Contact, error)
}

type service struct {
	store Store
}

// New constructs a contact Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) Insert(ctx context.Context, contact store.Contact) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return s.store.Insert(ctx, contact)
}

func (s *service) Update(ctx context.Context, id int64, contact store.Contact) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return s.store.Update(ctx, id, contact)
}

func (s *service) Delete(ctx context.Context, id int64) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return s.store.Delete(ctx, id)
}

func (s *service) List(ctx context.Context) ([]store.ContactSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.List(ctx)
}

func (s *service) Search(ctx context.Context, filter store.SearchFilter) ([]store.Contact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.Search(ctx, filter)
}
