package docstore

import (
	"context"
	"sync"

	"mentorportal/internal/config"
	"mentorportal/internal/database"
	"mentorportal/internal/logger"
)

// Opener creates the underlying Store on first use.
type Opener func(ctx context.Context) (Store, error)

// Accessor hands out one shared Store per process, opening it lazily.
// A failed open is not remembered, so the next call tries again.
type Accessor struct {
	open Opener

	mu    sync.RWMutex
	store Store
}

func NewAccessor(open Opener) *Accessor {
	return &Accessor{open: open}
}

// Store returns the shared Store, opening it if no client exists yet.
func (a *Accessor) Store(ctx context.Context) (Store, error) {
	a.mu.RLock()
	s := a.store
	a.mu.RUnlock()
	if s != nil {
		return s, nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.store != nil {
		return a.store, nil
	}

	s, err := a.open(ctx)
	if err != nil {
		return nil, err
	}
	a.store = s
	return s, nil
}

// Close releases the client if one was opened.
func (a *Accessor) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.store == nil {
		return nil
	}
	err := a.store.Close()
	a.store = nil
	return err
}

// FirestoreOpener resolves credentials and connects to Firestore.
func FirestoreOpener(cfg FirebaseConfig, log *logger.Logger) Opener {
	return func(ctx context.Context) (Store, error) {
		creds, err := ResolveCredentials(cfg)
		if err != nil {
			return nil, err
		}

		store, err := OpenFirestore(ctx, creds)
		if err != nil {
			return nil, err
		}

		log.Info("firestore client initialized",
			"project_id", creds.ProjectID,
			"credentials", creds.Source)
		return store, nil
	}
}

// SQLOpener connects to dsn and prepares the documents table.
func SQLOpener(dsn string, log *logger.Logger) Opener {
	return func(_ context.Context) (Store, error) {
		db, err := database.Connect(dsn, log)
		if err != nil {
			return nil, err
		}
		return NewSQLStore(db)
	}
}

// OpenerFor picks the opener for the configured backend.
func OpenerFor(cfg *config.Config, log *logger.Logger) Opener {
	if cfg.DocStore.Backend == config.BackendSQL {
		return SQLOpener(cfg.DocStore.DatabaseURL, log)
	}
	return FirestoreOpener(FirebaseConfig{
		KeyPath:     cfg.KeyPath,
		ProjectID:   cfg.Firebase.ProjectID,
		ClientEmail: cfg.Firebase.ClientEmail,
		PrivateKey:  cfg.Firebase.PrivateKey,
	}, log)
}
