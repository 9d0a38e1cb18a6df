package docstore

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// Firestore is a Store backed by Cloud Firestore.
type Firestore struct {
	client *firestore.Client
}

// OpenFirestore initializes a Firebase app from creds and opens its Firestore client.
func OpenFirestore(ctx context.Context, creds *Credentials) (*Firestore, error) {
	app, err := firebase.NewApp(ctx,
		&firebase.Config{ProjectID: creds.ProjectID},
		option.WithCredentialsJSON(creds.JSON),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open firestore client: %w", err)
	}

	return &Firestore{client: client}, nil
}

func (f *Firestore) Add(ctx context.Context, collection string, fields map[string]any) (string, error) {
	ref, _, err := f.client.Collection(collection).Add(ctx, fields)
	if err != nil {
		return "", fmt.Errorf("failed to add document to %s: %w", collection, err)
	}
	return ref.ID, nil
}

func (f *Firestore) FindBy(ctx context.Context, collection, field string, value any, limit int) ([]Document, error) {
	q := f.client.Collection(collection).Where(field, "==", value)
	if limit > 0 {
		q = q.Limit(limit)
	}

	iter := q.Documents(ctx)
	defer iter.Stop()

	var docs []Document
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to query %s by %s: %w", collection, field, err)
		}
		docs = append(docs, Document{ID: snap.Ref.ID, Fields: snap.Data()})
	}

	return docs, nil
}

func (f *Firestore) Close() error {
	return f.client.Close()
}
