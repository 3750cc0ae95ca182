package store

import (
	"context"
	"fmt"

	"github.com/staykeeper/staykeeper/internal/logger"
	"github.com/staykeeper/staykeeper/models"
)

// guideCacheRepository is the SQLite-backed implementation of
// [GuideCacheRepository]. Each Replace* call swaps the cached rows inside a
// transaction so readers never observe a half-written cache.
type guideCacheRepository struct {
	*DB
	logger *logger.Logger
}

// NewGuideCacheRepository constructs a [GuideCacheRepository] backed by the
// local database connection and logger.
func NewGuideCacheRepository(db *DB, logger *logger.Logger) GuideCacheRepository {
	return &guideCacheRepository{
		DB:     db,
		logger: logger,
	}
}

// ReplaceProperties atomically replaces the whole cached property list.
func (r *guideCacheRepository) ReplaceProperties(ctx context.Context, properties []models.Property) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "guideCacheRepository.ReplaceProperties").
			Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteCachedProperties); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	for _, property := range properties {
		_, err = tx.ExecContext(ctx, insertCachedProperty,
			property.ID, property.OwnerID, property.Name, property.Slug,
			property.Address, property.CoverImage, property.CreatedAt)
		if err != nil {
			log.Err(err).
				Str("func", "guideCacheRepository.ReplaceProperties").
				Int64("property_id", property.ID).
				Msg("failed to cache property")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetProperties returns the cached property list, most recently created
// first. An empty cache yields an empty slice, not an error.
func (r *guideCacheRepository) GetProperties(ctx context.Context) ([]models.Property, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := r.DB.QueryContext(ctx, getCachedProperties)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "guideCacheRepository.GetProperties").
			Msg("failed to query cached properties")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	results := make([]models.Property, 0, 10)

	for rows.Next() {
		var item models.Property

		scanErr := rows.Scan(&item.ID, &item.OwnerID, &item.Name, &item.Slug,
			&item.Address, &item.CoverImage, &item.CreatedAt)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// ReplaceSections atomically replaces the cached sections of one property.
func (r *guideCacheRepository) ReplaceSections(ctx context.Context, propertyID int64, sections []models.Section) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "guideCacheRepository.ReplaceSections").
			Int64("property_id", propertyID).
			Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteCachedSections, propertyID); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	for _, section := range sections {
		_, err = tx.ExecContext(ctx, insertCachedSection,
			section.ID, section.PropertyID, section.Category,
			section.Title, section.Content, section.ImageURL)
		if err != nil {
			log.Err(err).
				Str("func", "guideCacheRepository.ReplaceSections").
				Int64("section_id", section.ID).
				Msg("failed to cache section")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetSections returns the cached sections of one property in insertion
// order.
func (r *guideCacheRepository) GetSections(ctx context.Context, propertyID int64) ([]models.Section, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := r.DB.QueryContext(ctx, getCachedSections, propertyID)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "guideCacheRepository.GetSections").
			Int64("property_id", propertyID).
			Msg("failed to query cached sections")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	results := make([]models.Section, 0, 16)

	for rows.Next() {
		var item models.Section

		scanErr := rows.Scan(&item.ID, &item.PropertyID, &item.Category,
			&item.Title, &item.Content, &item.ImageURL)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}
