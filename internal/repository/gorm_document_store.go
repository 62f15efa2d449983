package repository

import (
	"context"
	"errors"
	"fmt"

	"calorie-planner/internal/domain/entity"
	domainRepo "calorie-planner/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// pgUniqueViolation is the PostgreSQL SQLSTATE for unique_violation.
const pgUniqueViolation = "23505"

type gormDocumentStore struct {
	db *gorm.DB
}

func NewGormDocumentStore(db *gorm.DB) domainRepo.DocumentStore {
	return &gormDocumentStore{db: db}
}

func (s *gormDocumentStore) Get(ctx context.Context, collection, id string) (entity.JSON, error) {
	var doc entity.Document
	err := s.db.WithContext(ctx).
		Where("collection = ? AND id = ?", collection, id).
		Take(&doc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainRepo.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("find document %s/%s: %w", collection, id, err)
	}
	if doc.Data == nil {
		return entity.JSON{}, nil
	}
	return doc.Data, nil
}

func (s *gormDocumentStore) Set(ctx context.Context, collection, id string, partial entity.JSON, merge bool) error {
	err := s.write(ctx, collection, id, partial, merge)
	// Two writers creating the same document race on the primary key. The
	// loser's insert never happened, so it goes again and takes the update
	// path. Any other failure is returned as is.
	if isUniqueViolation(err) {
		err = s.write(ctx, collection, id, partial, merge)
	}
	if err != nil {
		return fmt.Errorf("write document %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *gormDocumentStore) write(ctx context.Context, collection, id string, partial entity.JSON, merge bool) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing entity.Document
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("collection = ? AND id = ?", collection, id).
			Take(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(&entity.Document{
				Collection: collection,
				ID:         id,
				Data:       entity.JSON{}.Merge(partial),
			}).Error
		}
		if err != nil {
			return err
		}

		data := entity.JSON{}.Merge(partial)
		if merge {
			data = existing.Data.Merge(partial)
		}
		return tx.Model(&entity.Document{}).
			Where("collection = ? AND id = ?", collection, id).
			Update("data", data).Error
	})
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
