package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/staykeeper/staykeeper/models"
	"github.com/stretchr/testify/assert"
)

func TestValidate_Property(t *testing.T) {
	v := NewGuideValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"valid", "Seaside Villa", nil},
		{"trimmed to valid", "  Seaside Villa  ", nil},
		{"minimum length", "Ab", nil},
		{"too short", "A", ErrInvalidPropertyName},
		{"whitespace only", "   ", ErrInvalidPropertyName},
		{"empty", "", ErrInvalidPropertyName},
		{"exactly max", strings.Repeat("a", 100), nil},
		{"too long", strings.Repeat("a", 101), ErrInvalidPropertyName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, models.Property{Name: tt.input})
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_PropertyPatch(t *testing.T) {
	v := NewGuideValidator()
	ctx := context.Background()

	name := "Renamed Villa"
	short := "x"
	address := "2 Hill St"

	assert.NoError(t, v.Validate(ctx, models.PropertyPatch{Name: &name}))
	assert.NoError(t, v.Validate(ctx, models.PropertyPatch{Address: &address}))
	assert.ErrorIs(t, v.Validate(ctx, models.PropertyPatch{}), ErrNoFieldsToUpdate)
	assert.ErrorIs(t, v.Validate(ctx, models.PropertyPatch{Name: &short}), ErrInvalidPropertyName)
}

func TestValidate_SectionPayload(t *testing.T) {
	v := NewGuideValidator()
	ctx := context.Background()

	valid := models.SectionPayload{Category: models.CategoryEssentials, Title: "WiFi"}
	assert.NoError(t, v.Validate(ctx, valid))

	noTitle := models.SectionPayload{Category: models.CategoryGear, Title: "   "}
	assert.ErrorIs(t, v.Validate(ctx, noTitle), ErrEmptyTitle)

	badCategory := models.SectionPayload{Category: "misc", Title: "WiFi"}
	assert.ErrorIs(t, v.Validate(ctx, badCategory), ErrInvalidCategory)

	// content and image are optional
	bare := models.SectionPayload{Category: models.CategoryFun, Title: "Beach"}
	assert.NoError(t, v.Validate(ctx, bare))
}

func TestValidate_Section(t *testing.T) {
	v := NewGuideValidator()
	ctx := context.Background()

	section := models.Section{ID: 1, PropertyID: 2, Category: models.CategoryLogistics, Title: "Checkout"}
	assert.NoError(t, v.Validate(ctx, section))
	assert.NoError(t, v.Validate(ctx, &section))
}

func TestValidate_UserCredentials(t *testing.T) {
	v := NewGuideValidator()
	ctx := context.Background()

	valid := models.User{Email: "owner@example.com", Password: "secret1"}
	assert.NoError(t, v.Validate(ctx, valid))

	badEmail := models.User{Email: "not-an-email", Password: "secret1"}
	assert.ErrorIs(t, v.Validate(ctx, badEmail), ErrInvalidEmail)

	weak := models.User{Email: "owner@example.com", Password: "123"}
	assert.ErrorIs(t, v.Validate(ctx, weak), ErrWeakPassword)

	// scoped to email only, password ignored
	assert.NoError(t, v.Validate(ctx, models.User{Email: "owner@example.com"}, FieldEmail))
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewGuideValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
}

func TestValidate_UnknownField(t *testing.T) {
	v := NewGuideValidator()
	err := v.Validate(context.Background(), models.Property{Name: "Villa"}, "owner_id")
	assert.ErrorIs(t, err, ErrUnknownField)
}
