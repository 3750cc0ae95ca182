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

// propertyRepository is the PostgreSQL-backed implementation of
// [PropertyRepository]. It executes all property CRUD operations against the
// "properties" table using the embedded [*DB] connection.
//
// Every mutation and owner-facing read is scoped by both the property ID and
// the owner ID. A zero-row result maps to [ErrNotFoundOrForbidden] without
// revealing whether the record exists.
type propertyRepository struct {
	*DB
	logger *logger.Logger
}

// NewPropertyRepository constructs a [PropertyRepository] backed by the
// provided database connection and logger.
func NewPropertyRepository(db *DB, logger *logger.Logger) PropertyRepository {
	logger.Debug().Msg("creating property repository")
	return &propertyRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateProperty persists a new property and returns it with server-assigned
// fields (ID, CreatedAt) populated.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrSlugAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *propertyRepository) CreateProperty(ctx context.Context, property models.Property) (models.Property, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, createProperty,
		property.OwnerID, property.Name, property.Slug, property.Address, property.CoverImage)

	if err := row.Scan(&property.ID, &property.OwnerID, &property.Name, &property.Slug,
		&property.Address, &property.CoverImage, &property.CreatedAt); err != nil {
		log.Err(err).
			Str("func", "propertyRepository.CreateProperty").
			Int64("owner_id", property.OwnerID).
			Msg("failed to insert property")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Property{}, ErrSlugAlreadyExists
		default:
			return models.Property{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return property, nil
}

// GetProperties retrieves every property owned by the given owner, most
// recently created first.
//
// Returns an empty slice when the owner has no properties.
func (r *propertyRepository) GetProperties(ctx context.Context, ownerID int64) ([]models.Property, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := r.DB.QueryContext(ctx, getPropertiesByOwner, ownerID)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "propertyRepository.GetProperties").
			Int64("owner_id", ownerID).
			Msg("failed to execute query for listing properties")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	results := make([]models.Property, 0, 10)

	for rows.Next() {
		var item models.Property

		scanErr := rows.Scan(&item.ID, &item.OwnerID, &item.Name, &item.Slug,
			&item.Address, &item.CoverImage, &item.CreatedAt)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "propertyRepository.GetProperties").
				Int64("owner_id", ownerID).
				Msg("failed to scan property row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "propertyRepository.GetProperties").
			Int64("owner_id", ownerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// GetPropertyByID retrieves a single property scoped by its ID and the
// owner ID.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrNotFoundOrForbidden].
func (r *propertyRepository) GetPropertyByID(ctx context.Context, propertyID, ownerID int64) (models.Property, error) {
	log := logger.FromContext(ctx)

	var property models.Property
	row := r.DB.QueryRowContext(ctx, getPropertyByID, propertyID, ownerID)

	if err := row.Scan(&property.ID, &property.OwnerID, &property.Name, &property.Slug,
		&property.Address, &property.CoverImage, &property.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Property{}, ErrNotFoundOrForbidden
		}

		log.Err(err).
			Str("func", "propertyRepository.GetPropertyByID").
			Int64("property_id", propertyID).
			Int64("owner_id", ownerID).
			Msg("failed to scan property row")
		return models.Property{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return property, nil
}

// GetPropertyBySlug retrieves a property by its public slug. The lookup is
// intentionally unscoped: it backs the guest-facing guide resolution.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrNotFound].
func (r *propertyRepository) GetPropertyBySlug(ctx context.Context, slug string) (models.Property, error) {
	log := logger.FromContext(ctx)

	var property models.Property
	row := r.DB.QueryRowContext(ctx, getPropertyBySlug, slug)

	if err := row.Scan(&property.ID, &property.OwnerID, &property.Name, &property.Slug,
		&property.Address, &property.CoverImage, &property.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Property{}, ErrNotFound
		}

		log.Err(err).
			Str("func", "propertyRepository.GetPropertyBySlug").
			Str("slug", slug).
			Msg("failed to scan property row")
		return models.Property{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return property, nil
}

// UpdateProperty applies the non-nil fields of the patch to the property
// identified by propertyID, scoped by the owner ID. The UPDATE is built
// dynamically via [buildUpdatePropertyQuery] and returns the post-update
// record.
//
// Error handling:
//   - empty patch → [ErrBuildingSQLQuery].
//   - [sql.ErrNoRows] from RETURNING → [ErrNotFoundOrForbidden].
func (r *propertyRepository) UpdateProperty(ctx context.Context, propertyID, ownerID int64, patch models.PropertyPatch) (models.Property, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdatePropertyQuery(propertyID, ownerID, patch)
	if err != nil {
		log.Err(err).
			Str("func", "propertyRepository.UpdateProperty").
			Int64("property_id", propertyID).
			Msg("failed to build update query")
		return models.Property{}, err
	}

	var property models.Property
	row := r.DB.QueryRowContext(ctx, query, args...)

	if scanErr := row.Scan(&property.ID, &property.OwnerID, &property.Name, &property.Slug,
		&property.Address, &property.CoverImage, &property.CreatedAt); scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.Property{}, ErrNotFoundOrForbidden
		}

		log.Err(scanErr).
			Str("func", "propertyRepository.UpdateProperty").
			Int64("property_id", propertyID).
			Int64("owner_id", ownerID).
			Msg("failed to execute property update")
		return models.Property{}, fmt.Errorf("%w: %w", ErrExecutingStatement, scanErr)
	}

	return property, nil
}

// DeleteProperty removes the property identified by propertyID, scoped by
// the owner ID. Sections are removed by the ON DELETE CASCADE constraint.
//
// Error handling:
//   - zero affected rows → [ErrNotFoundOrForbidden].
func (r *propertyRepository) DeleteProperty(ctx context.Context, propertyID, ownerID int64) error {
	log := logger.FromContext(ctx)

	var result sql.Result
	// the delete cascades to sections, so give transient conflicts a retry
	err := r.DB.withRetry(ctx, func() error {
		var execErr error
		result, execErr = r.DB.ExecContext(ctx, deleteProperty, propertyID, ownerID)
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "propertyRepository.DeleteProperty").
			Int64("property_id", propertyID).
			Int64("owner_id", ownerID).
			Msg("failed to execute property delete")
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
