package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// ClientConfig is the configuration view used by the command-line client,
// assembled from [StructuredConfig].
type ClientConfig struct {
	// API contains the endpoint, key and request timeout.
	API API
	// Log contains logging settings.
	Log Log
	// Output contains result printing settings.
	Output Output
	// Generator contains fake-data generator settings.
	Generator Generator
}

// GetClientConfig builds and validates the client config view from the
// merged structured configuration. fs holds the command-line flags
// registered with [RegisterFlags] and may be nil.
func GetClientConfig(fs *pflag.FlagSet) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(fs)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		API: API{
			Server:         strings.TrimSuffix(strings.TrimSpace(cfg.API.Server), "/"),
			Version:        strings.TrimSpace(cfg.API.Version),
			Key:            cfg.API.Key,
			RequestTimeout: cfg.API.RequestTimeout,
		},
		Log:       cfg.Log,
		Output:    Output{Colour: cfg.Output.Colour, Format: strings.ToLower(cfg.Output.Format)},
		Generator: cfg.Generator,
	}

	return clientCfg, clientCfg.validate()
}
