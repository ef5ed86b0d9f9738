package service

import (
	"errors"

	"github.com/MKhiriev/go-omnisearch/internal/adapter"
)

var (
	// ErrRemoteCallFailed is the fallback classification of transport failures.
	ErrRemoteCallFailed = adapter.ErrRemoteCallFailed

	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation failed")
	ErrNotModified = errors.New("record not modified")
	ErrNotDeleted  = errors.New("record not deleted")
)
