package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type document struct {
	ID         string         `gorm:"primaryKey;size:36"`
	Collection string         `gorm:"size:128;index;not null"`
	Fields     datatypes.JSON `gorm:"not null"`
	CreatedAt  time.Time      `gorm:"index"`
}

func (document) TableName() string {
	return "documents"
}

// SQLStore keeps documents as JSON rows in a single gorm-managed table.
// Field values round-trip through JSON, so time.Time comes back as an RFC 3339 string.
type SQLStore struct {
	db *gorm.DB
}

func NewSQLStore(db *gorm.DB) (*SQLStore, error) {
	if err := db.AutoMigrate(&document{}); err != nil {
		return nil, fmt.Errorf("failed to migrate documents table: %w", err)
	}
	return &SQLStore{db: db}, nil
}

func (s *SQLStore) Add(ctx context.Context, collection string, fields map[string]any) (string, error) {
	raw, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("failed to encode document: %w", err)
	}

	doc := document{
		ID:         uuid.NewString(),
		Collection: collection,
		Fields:     datatypes.JSON(raw),
	}
	if err := s.db.WithContext(ctx).Create(&doc).Error; err != nil {
		return "", fmt.Errorf("failed to add document to %s: %w", collection, err)
	}

	return doc.ID, nil
}

func (s *SQLStore) FindBy(ctx context.Context, collection, field string, value any, limit int) ([]Document, error) {
	q := s.db.WithContext(ctx).
		Where("collection = ?", collection).
		Where(datatypes.JSONQuery("fields").Equals(value, field)).
		Order("created_at ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var rows []document
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query %s by %s: %w", collection, field, err)
	}

	docs := make([]Document, 0, len(rows))
	for _, row := range rows {
		fields := map[string]any{}
		if err := json.Unmarshal(row.Fields, &fields); err != nil {
			return nil, fmt.Errorf("failed to decode document %s: %w", row.ID, err)
		}
		docs = append(docs, Document{ID: row.ID, Fields: fields})
	}

	return docs, nil
}

func (s *SQLStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
