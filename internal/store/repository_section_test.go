package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/staykeeper/staykeeper/internal/logger"
	"github.com/staykeeper/staykeeper/models"
)

var sectionColumns = []string{"id", "property_id", "category", "title", "content", "image_url"}

func newTestSectionRepo(t *testing.T) (*sectionRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &sectionRepository{
		DB:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func TestCreateSection_Success(t *testing.T) {
	repo, mock, db := newTestSectionRepo(t)
	defer db.Close()

	ctx := context.Background()
	section := models.Section{
		PropertyID: 10,
		Category:   models.CategoryEssentials,
		Title:      "WiFi",
		Content:    "Network: villa / Password: sunshine",
	}

	rows := sqlmock.NewRows(sectionColumns).
		AddRow(100, section.PropertyID, string(section.Category), section.Title, section.Content, "")

	mock.ExpectQuery("INSERT INTO manual_sections").
		WithArgs(section.PropertyID, int64(1), section.Category, section.Title, section.Content, section.ImageURL).
		WillReturnRows(rows)

	created, err := repo.CreateSection(ctx, 1, section)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 100 {
		t.Errorf("expected ID=100, got %d", created.ID)
	}
	if created.Category != models.CategoryEssentials {
		t.Errorf("expected essentials category, got %s", created.Category)
	}
}

func TestCreateSection_ForeignProperty(t *testing.T) {
	repo, mock, db := newTestSectionRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO manual_sections").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.CreateSection(ctx, 99, models.Section{PropertyID: 10, Category: models.CategoryGear, Title: "TV"})
	if !errors.Is(err, ErrNotFoundOrForbidden) {
		t.Fatalf("expected ErrNotFoundOrForbidden, got %v", err)
	}
}

func TestGetSectionsByProperty_Success(t *testing.T) {
	repo, mock, db := newTestSectionRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows(sectionColumns).
		AddRow(1, 10, "essentials", "WiFi", "Network details", "").
		AddRow(2, 10, "fun", "Beach", "Five minutes on foot", "")

	mock.ExpectQuery("SELECT id, property_id, category, title, content, image_url").
		WithArgs(int64(10)).
		WillReturnRows(rows)

	sections, err := repo.GetSectionsByProperty(ctx, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(sections))
	}
	if sections[1].Category != models.CategoryFun {
		t.Errorf("expected fun category, got %s", sections[1].Category)
	}
}

func TestUpdateSection_Success(t *testing.T) {
	repo, mock, db := newTestSectionRepo(t)
	defer db.Close()

	ctx := context.Background()
	section := models.Section{
		ID:       100,
		Category: models.CategoryLogistics,
		Title:    "Checkout",
		Content:  "Leave keys on the table",
	}

	rows := sqlmock.NewRows(sectionColumns).
		AddRow(section.ID, 10, string(section.Category), section.Title, section.Content, "")

	mock.ExpectQuery("UPDATE manual_sections").
		WithArgs(section.ID, int64(1), section.Category, section.Title, section.Content, section.ImageURL).
		WillReturnRows(rows)

	updated, err := repo.UpdateSection(ctx, 1, section)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Title != "Checkout" {
		t.Errorf("expected updated title, got %s", updated.Title)
	}
}

func TestUpdateSection_ZeroRows(t *testing.T) {
	repo, mock, db := newTestSectionRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("UPDATE manual_sections").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateSection(ctx, 99, models.Section{ID: 100, Category: models.CategoryGear, Title: "TV"})
	if !errors.Is(err, ErrNotFoundOrForbidden) {
		t.Fatalf("expected ErrNotFoundOrForbidden, got %v", err)
	}
}

func TestDeleteSection_Success(t *testing.T) {
	repo, mock, db := newTestSectionRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM manual_sections").
		WithArgs(int64(100), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteSection(ctx, 100, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteSection_ZeroRows(t *testing.T) {
	repo, mock, db := newTestSectionRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM manual_sections").
		WithArgs(int64(100), int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteSection(ctx, 100, 99)
	if !errors.Is(err, ErrNotFoundOrForbidden) {
		t.Fatalf("expected ErrNotFoundOrForbidden, got %v", err)
	}
}
