package repository

import (
	"context"
	"errors"

	"calorie-planner/internal/domain/entity"
)

// ErrDocumentNotFound is returned by Get when no document exists.
var ErrDocumentNotFound = errors.New("document not found")

// DocumentStore is a key-value document database addressed by collection and id.
type DocumentStore interface {
	Get(ctx context.Context, collection, id string) (entity.JSON, error)
	// Set writes partial. With merge, fields absent from partial keep their
	// stored values; without merge, the document is replaced.
	Set(ctx context.Context, collection, id string, partial entity.JSON, merge bool) error
}
