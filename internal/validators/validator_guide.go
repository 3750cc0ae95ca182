package validators

import (
	"context"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/staykeeper/staykeeper/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	FieldName       = "name"
	FieldCategory   = "category"
	FieldTitle      = "title"
	FieldEmail      = "email"
	FieldPassword   = "password"
	FieldPropertyID = "property_id"
)

const (
	minPropertyNameLength = 2
	maxPropertyNameLength = 100
	minPasswordLength     = 6
)

// GuideValidator implements the Validator interface for all guide-related
// domain models: Property, PropertyPatch, Section, SectionPayload and User
// credentials.
type GuideValidator struct {
}

func NewGuideValidator() Validator {
	return &GuideValidator{}
}

func (v *GuideValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Property:
		return v.validateProperty(ctx, value, fields...)
	case *models.Property:
		return v.validateProperty(ctx, *value, fields...)

	case models.PropertyPatch:
		return v.validatePropertyPatch(ctx, value, fields...)
	case *models.PropertyPatch:
		return v.validatePropertyPatch(ctx, *value, fields...)

	case models.Section:
		return v.validateSectionPayload(ctx, value.Payload(), fields...)
	case *models.Section:
		return v.validateSectionPayload(ctx, value.Payload(), fields...)

	case models.SectionPayload:
		return v.validateSectionPayload(ctx, value, fields...)
	case *models.SectionPayload:
		return v.validateSectionPayload(ctx, *value, fields...)

	case models.User:
		return v.validateUserCredentials(ctx, value, fields...)
	case *models.User:
		return v.validateUserCredentials(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validPropertyName reports whether the trimmed name length is inside the
// allowed bounds. Length is measured in runes, not bytes.
func validPropertyName(name string) bool {
	length := utf8.RuneCountInString(strings.TrimSpace(name))
	return length >= minPropertyNameLength && length <= maxPropertyNameLength
}

func (v *GuideValidator) validateProperty(_ context.Context, property models.Property, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if !validPropertyName(property.Name) {
				return ErrInvalidPropertyName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *GuideValidator) validatePropertyPatch(_ context.Context, patch models.PropertyPatch, _ ...string) error {
	if patch.IsEmpty() {
		return ErrNoFieldsToUpdate
	}

	if patch.Name != nil && !validPropertyName(*patch.Name) {
		return ErrInvalidPropertyName
	}

	return nil
}

func (v *GuideValidator) validateSectionPayload(_ context.Context, payload models.SectionPayload, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCategory, FieldTitle}
	}

	for _, f := range fields {
		switch f {
		case FieldCategory:
			if !payload.Category.Valid() {
				return ErrInvalidCategory
			}
		case FieldTitle:
			if strings.TrimSpace(payload.Title) == "" {
				return ErrEmptyTitle
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *GuideValidator) validateUserCredentials(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if _, err := mail.ParseAddress(user.Email); err != nil {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if utf8.RuneCountInString(user.Password) < minPasswordLength {
				return ErrWeakPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
