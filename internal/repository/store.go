package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Patch is a partial update. Changes returns only the columns the caller supplied.
type Patch interface {
	Changes() map[string]any
}

// Store is a GORM-backed create/get/update/delete store for one model type.
// Every mutating call runs in its own database transaction and reloads the
// record before returning it.
type Store[T any] struct {
	db *gorm.DB
}

// NewStore returns a Store for model T
func NewStore[T any](db *gorm.DB) *Store[T] {
	return &Store[T]{db: db}
}

// Create inserts rec, commits, and refreshes rec from the database
func (s *Store[T]) Create(ctx context.Context, rec *T) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(rec).Error; err != nil {
			return err
		}
		return tx.First(rec).Error
	})
	if err != nil {
		return fmt.Errorf("create %T: %w", rec, translate(err))
	}
	return nil
}

// Get loads the record with the given id
func (s *Store[T]) Get(ctx context.Context, id uint) (*T, error) {
	var rec T
	if err := s.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		return nil, translate(err)
	}
	return &rec, nil
}

// Update applies patch to the record with the given id, commits, and returns the reloaded record
func (s *Store[T]) Update(ctx context.Context, id uint, patch Patch) (*T, error) {
	var rec T
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&rec, id).Error; err != nil {
			return err
		}
		if changes := patch.Changes(); len(changes) > 0 {
			if err := tx.Model(&rec).Updates(changes).Error; err != nil {
				return err
			}
		}
		return tx.First(&rec, id).Error
	})
	if err != nil {
		return nil, fmt.Errorf("update %T %d: %w", rec, id, translate(err))
	}
	return &rec, nil
}

// Delete removes the record with the given id
func (s *Store[T]) Delete(ctx context.Context, id uint) error {
	var rec T
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&rec, id).Error; err != nil {
			return err
		}
		return tx.Delete(&rec).Error
	})
	if err != nil {
		return fmt.Errorf("delete %T %d: %w", rec, id, translate(err))
	}
	return nil
}

// ListBy returns every record whose column equals value, ordered by id.
// column must be a trusted column name, never user input.
func (s *Store[T]) ListBy(ctx context.Context, column string, value any) ([]T, error) {
	out := []T{}
	if err := s.db.WithContext(ctx).Where(column+" = ?", value).Order("id").Find(&out).Error; err != nil {
		return nil, translate(err)
	}
	return out, nil
}
