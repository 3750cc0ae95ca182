package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/staykeeper/staykeeper/internal/logger"
	"github.com/staykeeper/staykeeper/models"
)

// sectionRepository is the PostgreSQL-backed implementation of
// [SectionRepository]. It executes all manual-section CRUD operations against
// the "manual_sections" table using the embedded [*DB] connection.
//
// Mutations join through "properties" so that ownership is enforced inside
// the statement itself. A zero-row result maps to [ErrNotFoundOrForbidden].
type sectionRepository struct {
	*DB
	logger *logger.Logger
}

// NewSectionRepository constructs a [SectionRepository] backed by the
// provided database connection and logger.
func NewSectionRepository(db *DB, logger *logger.Logger) SectionRepository {
	logger.Debug().Msg("creating section repository")
	return &sectionRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateSection inserts a new section under the property referenced by
// section.PropertyID. The INSERT selects the target property scoped by the
// owner ID, so a missing or foreign property produces no row.
//
// Error handling:
//   - [sql.ErrNoRows] from RETURNING → [ErrNotFoundOrForbidden].
//   - PostgreSQL check_violation (23514) → [ErrExecutingStatement] (unknown category).
func (r *sectionRepository) CreateSection(ctx context.Context, ownerID int64, section models.Section) (models.Section, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, createSection,
		section.PropertyID, ownerID, section.Category, section.Title, section.Content, section.ImageURL)

	if err := row.Scan(&section.ID, &section.PropertyID, &section.Category,
		&section.Title, &section.Content, &section.ImageURL); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Section{}, ErrNotFoundOrForbidden
		}

		log.Err(err).
			Str("func", "sectionRepository.CreateSection").
			Int64("property_id", section.PropertyID).
			Int64("owner_id", ownerID).
			Msg("failed to insert section")

		switch postgresError(err) {
		case pgerrcode.CheckViolation:
			return models.Section{}, fmt.Errorf("%w: invalid category %q", ErrExecutingStatement, section.Category)
		default:
			return models.Section{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return section, nil
}

// GetSectionsByProperty retrieves every section of the given property in
// insertion order. The lookup is unscoped because it also backs the public
// guide resolution; owner-facing callers must verify ownership first.
//
// Returns an empty slice when the property has no sections.
func (r *sectionRepository) GetSectionsByProperty(ctx context.Context, propertyID int64) ([]models.Section, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := r.DB.QueryContext(ctx, getSectionsByProperty, propertyID)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "sectionRepository.GetSectionsByProperty").
			Int64("property_id", propertyID).
			Msg("failed to execute query for listing sections")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	results := make([]models.Section, 0, 16)

	for rows.Next() {
		var item models.Section

		scanErr := rows.Scan(&item.ID, &item.PropertyID, &item.Category,
			&item.Title, &item.Content, &item.ImageURL)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "sectionRepository.GetSectionsByProperty").
				Int64("property_id", propertyID).
				Msg("failed to scan section row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "sectionRepository.GetSectionsByProperty").
			Int64("property_id", propertyID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// UpdateSection replaces the editable fields of the section identified by
// section.ID, scoped by the owner ID through the properties join. Returns the
// post-update record.
//
// Error handling:
//   - [sql.ErrNoRows] from RETURNING → [ErrNotFoundOrForbidden].
func (r *sectionRepository) UpdateSection(ctx context.Context, ownerID int64, section models.Section) (models.Section, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, updateSection,
		section.ID, ownerID, section.Category, section.Title, section.Content, section.ImageURL)

	var updated models.Section
	if err := row.Scan(&updated.ID, &updated.PropertyID, &updated.Category,
		&updated.Title, &updated.Content, &updated.ImageURL); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Section{}, ErrNotFoundOrForbidden
		}

		log.Err(err).
			Str("func", "sectionRepository.UpdateSection").
			Int64("section_id", section.ID).
			Int64("owner_id", ownerID).
			Msg("failed to execute section update")
		return models.Section{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

// DeleteSection removes the section identified by sectionID, scoped by the
// owner ID through the properties join.
//
// Error handling:
//   - zero affected rows → [ErrNotFoundOrForbidden].
func (r *sectionRepository) DeleteSection(ctx context.Context, sectionID, ownerID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deleteSection, sectionID, ownerID)
	if err != nil {
		log.Err(err).
			Str("func", "sectionRepository.DeleteSection").
			Int64("section_id", sectionID).
			Int64("owner_id", ownerID).
			Msg("failed to execute section delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNotFoundOrForbidden
	}

	return nil
}
