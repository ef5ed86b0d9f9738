package service

import (
	"github.com/MKhiriev/go-omnisearch/internal/adapter"
	"github.com/MKhiriev/go-omnisearch/internal/logger"
)

type Services struct {
	OmniSearch OmniSearchService
}

// NewServices builds the facade over transport with argument validation
// applied in front of it.
func NewServices(transport adapter.Transport, logger *logger.Logger) *Services {
	return &Services{
		OmniSearch: NewOmniSearchValidationService().Wrap(NewOmniSearchService(transport, logger)),
	}
}
