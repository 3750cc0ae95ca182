package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/staykeeper/staykeeper/models"
)

const (
	createUser = `INSERT INTO users (email, password_hash)
    VALUES ($1, $2)
    RETURNING user_id, email, password_hash, created_at;`

	findUserByEmail = `SELECT user_id, email, password_hash, created_at
    FROM users
    WHERE email = $1;`

	createProperty = `INSERT INTO properties (owner_id, name, slug, address, cover_image)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, owner_id, name, slug, address, cover_image, created_at;`

	getPropertiesByOwner = `SELECT id, owner_id, name, slug, address, cover_image, created_at
		FROM properties
		WHERE owner_id = $1
		ORDER BY created_at DESC, id DESC;`

	getPropertyByID = `SELECT id, owner_id, name, slug, address, cover_image, created_at
		FROM properties
		WHERE id = $1 AND owner_id = $2;`

	getPropertyBySlug = `SELECT id, owner_id, name, slug, address, cover_image, created_at
		FROM properties
		WHERE slug = $1;`

	deleteProperty = `DELETE FROM properties
		WHERE id = $1 AND owner_id = $2;`

	// Section statements join through properties so that every mutation is
	// scoped to the owner in a single round trip. Zero affected rows means
	// the section or the ownership link does not exist.
	createSection = `INSERT INTO manual_sections (property_id, category, title, content, image_url)
		SELECT p.id, $3, $4, $5, $6
		FROM properties p
		WHERE p.id = $1 AND p.owner_id = $2
		RETURNING id, property_id, category, title, content, image_url;`

	getSectionsByProperty = `SELECT id, property_id, category, title, content, image_url
		FROM manual_sections
		WHERE property_id = $1
		ORDER BY id;`

	updateSection = `UPDATE manual_sections AS s
		SET category = $3, title = $4, content = $5, image_url = $6
		FROM properties p
		WHERE s.id = $1 AND s.property_id = p.id AND p.owner_id = $2
		RETURNING s.id, s.property_id, s.category, s.title, s.content, s.image_url;`

	deleteSection = `DELETE FROM manual_sections AS s
		USING properties p
		WHERE s.id = $1 AND s.property_id = p.id AND p.owner_id = $2;`
)

// buildUpdatePropertyQuery dynamically builds a partial UPDATE for the
// properties table from the non-nil fields of the patch. The slug never
// changes after creation, even when the name does.
//
// Returns [ErrBuildingSQLQuery] when the patch carries no fields.
func buildUpdatePropertyQuery(propertyID, ownerID int64, patch models.PropertyPatch) (string, []any, error) {
	if patch.IsEmpty() {
		return "", nil, ErrBuildingSQLQuery
	}

	builder := sq.Update("properties").PlaceholderFormat(sq.Dollar)

	if patch.Name != nil {
		builder = builder.Set("name", *patch.Name)
	}
	if patch.Address != nil {
		builder = builder.Set("address", *patch.Address)
	}
	if patch.CoverImage != nil {
		builder = builder.Set("cover_image", *patch.CoverImage)
	}

	builder = builder.
		Where(sq.Eq{"id": propertyID, "owner_id": ownerID}).
		Suffix("RETURNING id, owner_id, name, slug, address, cover_image, created_at")

	return builder.ToSql()
}
