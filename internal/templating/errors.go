package templating

import "errors"

var (
	ErrMalformedTemplate = errors.New("template is not a valid JSON object after substitution")
	ErrMissingTemplate   = errors.New("template path is required")
	ErrInvalidOverride   = errors.New("override must have the form key=value")
)
