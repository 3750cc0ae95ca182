// SPDX-License-Identifier: Apache-2.0

package store

const (
	clientSchema = `
		CREATE TABLE IF NOT EXISTS session (
			id       INTEGER PRIMARY KEY CHECK (id = 1),
			user_id  INTEGER NOT NULL,
			email    TEXT    NOT NULL,
			token    TEXT    NOT NULL,
			saved_at TIMESTAMP NOT NULL
		);

		CREATE TABLE IF NOT EXISTS cached_properties (
			id          INTEGER PRIMARY KEY,
			owner_id    INTEGER NOT NULL,
			name        TEXT    NOT NULL,
			slug        TEXT    NOT NULL,
			address     TEXT    NOT NULL DEFAULT '',
			cover_image TEXT    NOT NULL DEFAULT '',
			created_at  TIMESTAMP NOT NULL
		);

		CREATE TABLE IF NOT EXISTS cached_sections (
			id          INTEGER PRIMARY KEY,
			property_id INTEGER NOT NULL,
			category    TEXT    NOT NULL,
			title       TEXT    NOT NULL,
			content     TEXT    NOT NULL DEFAULT '',
			image_url   TEXT    NOT NULL DEFAULT ''
		);`

	saveLocalSession = `
		INSERT INTO session (id, user_id, email, token, saved_at)
		VALUES (1, $1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET user_id = excluded.user_id,
			email = excluded.email,
			token = excluded.token,
			saved_at = excluded.saved_at;`

	getLocalSession = `
		SELECT user_id, email, token, saved_at
		FROM session
		WHERE id = 1;`

	deleteLocalSession = `DELETE FROM session WHERE id = 1;`

	deleteCachedProperties = `DELETE FROM cached_properties;`

	insertCachedProperty = `
		INSERT INTO cached_properties (id, owner_id, name, slug, address, cover_image, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);`

	getCachedProperties = `
		SELECT id, owner_id, name, slug, address, cover_image, created_at
		FROM cached_properties
		ORDER BY created_at DESC, id DESC;`

	deleteCachedSections = `DELETE FROM cached_sections WHERE property_id = $1;`

	insertCachedSection = `
		INSERT INTO cached_sections (id, property_id, category, title, content, image_url)
		VALUES ($1, $2, $3, $4, $5, $6);`

	getCachedSections = `
		SELECT id, property_id, category, title, content, image_url
		FROM cached_sections
		WHERE property_id = $1
		ORDER BY id;`
)
