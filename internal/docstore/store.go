package docstore

import "context"

// Document is a stored record with its store-assigned id.
type Document struct {
	ID     string
	Fields map[string]any
}

// Store is the minimal document database surface the application relies on.
type Store interface {
	// Add inserts fields as a new document and returns the assigned id.
	Add(ctx context.Context, collection string, fields map[string]any) (string, error)
	// FindBy returns documents whose field equals value. A limit <= 0 means no limit.
	FindBy(ctx context.Context, collection, field string, value any, limit int) ([]Document, error)
	Close() error
}
