package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-omnisearch/models"
)

// Field names accepted by [QueryValidator.Validate].
const (
	FieldRecordID   = "record_id"
	FieldObjectType = "object_type"
	FieldRecordType = "record_type"
	FieldFilters    = "filters"
	FieldSort       = "sort"
	FieldPagination = "pagination"
)

// QueryValidator checks queries, records and identifiers.
type QueryValidator struct {
}

func NewQueryValidator() Validator {
	return &QueryValidator{}
}

// Validate dispatches on the type of obj. Strings are identifiers and are
// checked as the single field named in fields (record_id by default).
func (v *QueryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case string:
		return v.validateIdentifier(value, fields...)

	case models.Record:
		return v.validateRecord(value, fields...)
	case *models.Record:
		return v.validateRecord(*value, fields...)

	case models.ListQuery:
		return v.validateListQuery(value, fields...)
	case *models.ListQuery:
		return v.validateListQuery(*value, fields...)

	case models.SchemaQuery:
		return v.validateSchemaQuery(value, fields...)
	case *models.SchemaQuery:
		return v.validateSchemaQuery(*value, fields...)

	case models.SearchQuery:
		return v.validateSearchQuery(value, fields...)
	case *models.SearchQuery:
		return v.validateSearchQuery(*value, fields...)

	case models.Filters:
		return validateFilters(value)
	case []models.Filter:
		return validateFilters(value)

	case models.SortSpec:
		return validateSort(value)

	case models.Pagination:
		return validatePagination(value)

	default:
		return ErrUnsupportedType
	}
}

func (v *QueryValidator) validateIdentifier(value string, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRecordID}
	}

	for _, f := range fields {
		switch f {
		case FieldRecordID, FieldObjectType, FieldRecordType:
			if value == "" {
				return fmt.Errorf("%w: %s", ErrEmptyIdentifier, f)
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

// validateRecord checks nothing unless fields are given: updates may
// legitimately omit the type.
func (v *QueryValidator) validateRecord(record models.Record, fields ...string) error {
	for _, f := range fields {
		switch f {
		case FieldRecordType:
			if record.Type == "" {
				return ErrEmptyRecordType
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *QueryValidator) validateListQuery(q models.ListQuery, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPagination}
	}

	for _, f := range fields {
		switch f {
		case FieldRecordType:
			if q.RecordType == "" {
				return ErrEmptyRecordType
			}
		case FieldPagination:
			if err := validatePagination(q.Pagination); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *QueryValidator) validateSchemaQuery(q models.SchemaQuery, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRecordType, FieldFilters}
	}

	for _, f := range fields {
		switch f {
		case FieldRecordType:
			if q.RecordType == "" {
				return ErrEmptyRecordType
			}
		case FieldFilters:
			if err := validateFilters(q.Filters); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *QueryValidator) validateSearchQuery(q models.SearchQuery, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRecordType, FieldFilters, FieldSort, FieldPagination}
	}

	for _, f := range fields {
		switch f {
		case FieldRecordType:
			if q.RecordType == "" {
				return ErrEmptyRecordType
			}
		case FieldFilters:
			if err := validateFilters(q.Filters); err != nil {
				return err
			}
		case FieldSort:
			if err := validateSort(q.Sort); err != nil {
				return err
			}
		case FieldPagination:
			if err := validatePagination(q.Pagination); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

// validateFilters enforces the supported operator set. The operator is
// matched case-insensitively and is never rewritten.
func validateFilters(filters []models.Filter) error {
	for i, f := range filters {
		if f.Property == "" {
			return fmt.Errorf("%w: filter %d has no property", ErrInvalidFilter, i)
		}
		if !f.Comparison.IsValid() {
			return fmt.Errorf("%w: %q", ErrInvalidComparison, f.Comparison)
		}
	}
	return nil
}

func validateSort(s models.SortSpec) error {
	if s.IsZero() || s.Order == "" {
		return nil
	}
	if !s.Order.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidSortOrder, s.Order)
	}
	return nil
}

func validatePagination(p models.Pagination) error {
	if p.Page < 0 || p.PageSize < 0 {
		return fmt.Errorf("%w: page %d, page size %d", ErrInvalidPagination, p.Page, p.PageSize)
	}
	return nil
}
