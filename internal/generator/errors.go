package generator

import "errors"

var (
	ErrNoCandidates  = errors.New("no candidate values to pick from")
	ErrInvalidRange  = errors.New("invalid range: minimum must be non-negative and less than maximum")
	ErrInvalidOption = errors.New("invalid generator option")
	ErrInvalidSpec   = errors.New("invalid generate spec")
)
