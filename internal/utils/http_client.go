package utils

import (
	"github.com/MKhiriev/go-omnisearch/internal/logger"
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient(log)
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a new HTTPClient whose internal resty diagnostics
// (retries, body parsing warnings) go to log instead of stderr.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(log *logger.Logger) *HTTPClient {
	client := resty.New()
	if log != nil {
		client.SetLogger(NewRestyLogger(log))
	}
	return &HTTPClient{Client: client}
}

// RestyLogger adapts *logger.Logger to the resty.Logger interface.
type RestyLogger struct {
	log *logger.Logger
}

var _ resty.Logger = (*RestyLogger)(nil)

// NewRestyLogger returns a resty.Logger tagged with component=resty.
func NewRestyLogger(log *logger.Logger) *RestyLogger {
	child := log.With().Str("component", "resty").Logger()
	return &RestyLogger{log: &logger.Logger{Logger: child}}
}

func (l *RestyLogger) Errorf(format string, v ...interface{}) {
	l.log.Error().Msgf(format, v...)
}

func (l *RestyLogger) Warnf(format string, v ...interface{}) {
	l.log.Warn().Msgf(format, v...)
}

func (l *RestyLogger) Debugf(format string, v ...interface{}) {
	l.log.Debug().Msgf(format, v...)
}
