package richtext

import "errors"

var (
	ErrMalformedObject  = errors.New("malformed object")
	ErrMalformedContent = errors.New("malformed portable text content")
	ErrUnknownBlock     = errors.New("unknown portable text block type")
	ErrUnknownStyle     = errors.New("unknown portable text style")
	ErrUnknownMark      = errors.New("unknown portable text mark")
	ErrUnknownList      = errors.New("unknown portable text list type")
)
