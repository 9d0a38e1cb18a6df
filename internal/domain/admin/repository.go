package admin

import (
	"context"
	"fmt"
	"time"

	"mentorportal/internal/docstore"
)

// StoreProvider yields the shared document store.
type StoreProvider interface {
	Store(ctx context.Context) (docstore.Store, error)
}

type Repository interface {
	// FindByUsername returns ErrNotFound when no account matches.
	FindByUsername(ctx context.Context, username string) (*Account, error)
	// Create persists account and sets its ID.
	Create(ctx context.Context, account *Account) error
}

type repository struct {
	stores StoreProvider
}

func NewRepository(stores StoreProvider) Repository {
	return &repository{stores: stores}
}

func (r *repository) FindByUsername(ctx context.Context, username string) (*Account, error) {
	store, err := r.stores.Store(ctx)
	if err != nil {
		return nil, err
	}

	docs, err := store.FindBy(ctx, Collection, fieldUsername, username, 1)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, ErrNotFound
	}

	return decodeAccount(docs[0])
}

func (r *repository) Create(ctx context.Context, account *Account) error {
	store, err := r.stores.Store(ctx)
	if err != nil {
		return err
	}

	id, err := store.Add(ctx, Collection, map[string]any{
		fieldUsername:     account.Username,
		fieldPasswordHash: account.PasswordHash,
		fieldEmail:        account.Email,
		fieldCreatedAt:    account.CreatedAt,
	})
	if err != nil {
		return err
	}

	account.ID = id
	return nil
}

func decodeAccount(doc docstore.Document) (*Account, error) {
	a := &Account{ID: doc.ID}
	a.Username, _ = doc.Fields[fieldUsername].(string)
	a.PasswordHash, _ = doc.Fields[fieldPasswordHash].(string)
	a.Email, _ = doc.Fields[fieldEmail].(string)

	switch v := doc.Fields[fieldCreatedAt].(type) {
	case time.Time:
		a.CreatedAt = v
	case string:
		t, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return nil, fmt.Errorf("admin %s: bad %s: %w", doc.ID, fieldCreatedAt, err)
		}
		a.CreatedAt = t
	}

	return a, nil
}
