package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyIdentifier   = errors.New("identifier cannot be empty")
	ErrEmptyRecordType   = errors.New("record type is required")
	ErrInvalidFilter     = errors.New("invalid filter")
	ErrInvalidComparison = errors.New("invalid filter comparison")
	ErrInvalidSortOrder  = errors.New("invalid sort order")
	ErrInvalidPagination = errors.New("invalid pagination")
)
