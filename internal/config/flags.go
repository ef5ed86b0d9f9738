package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Flag names registered by [RegisterFlags].
const (
	FlagHost           = "host"
	FlagVersion        = "version"
	FlagKey            = "key"
	FlagRequestTimeout = "request-timeout"
	FlagColour         = "colour"
	FlagOutput         = "output"
	FlagConfig         = "config"
	FlagLogLevel       = "log-level"
	FlagLogFile        = "log-file"
	FlagSeed           = "seed"
)

// RegisterFlags adds the configuration flags shared by every command to fs.
//
// Flags:
//
//	--host             OmniSearch API root
//	--version          API version segment (default from env or "v1")
//	--key              API key
//	--request-timeout  request timeout (e.g. "30s", "1m")
//	--colour           print JSON output in colour
//	-o/--output        output format: json or yaml
//	-c/--config        JSON file path with configs
//	--log-level        log level
//	--log-file         write logs to a rotating file
//	--seed             fake-data generator seed
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(FlagHost, "", "OmniSearch host (env OMNISEARCH_API_SERVER)")
	fs.String(FlagVersion, "", "OmniSearch API version (env OMNISEARCH_API_VERSION, default v1)")
	fs.String(FlagKey, "", "OmniSearch API key (env OMNISEARCH_API_KEY)")
	fs.Duration(FlagRequestTimeout, 0, "Request timeout (e.g. 30s, 1m)")
	fs.Bool(FlagColour, false, "Print json output in colour")
	fs.StringP(FlagOutput, "o", "", "Output format: json or yaml")
	fs.StringP(FlagConfig, "c", "", "JSON config file path")
	fs.String(FlagLogLevel, "", "Log level: debug, info, warn, error")
	fs.String(FlagLogFile, "", "Write logs to this file instead of stderr")
	fs.Int64(FlagSeed, 0, "Fake-data generator seed, 0 for random")
}

// parseFlags reads the flags registered by [RegisterFlags] from fs. Only
// flags explicitly set on the command line are copied, so unset flags never
// shadow environment or file values.
func parseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}

	var err error
	if fs.Changed(FlagHost) {
		if cfg.API.Server, err = fs.GetString(FlagHost); err != nil {
			return nil, flagError(FlagHost, err)
		}
	}
	if fs.Changed(FlagVersion) {
		if cfg.API.Version, err = fs.GetString(FlagVersion); err != nil {
			return nil, flagError(FlagVersion, err)
		}
	}
	if fs.Changed(FlagKey) {
		if cfg.API.Key, err = fs.GetString(FlagKey); err != nil {
			return nil, flagError(FlagKey, err)
		}
	}
	if fs.Changed(FlagRequestTimeout) {
		if cfg.API.RequestTimeout, err = fs.GetDuration(FlagRequestTimeout); err != nil {
			return nil, flagError(FlagRequestTimeout, err)
		}
	}
	if fs.Changed(FlagColour) {
		if cfg.Output.Colour, err = fs.GetBool(FlagColour); err != nil {
			return nil, flagError(FlagColour, err)
		}
	}
	if fs.Changed(FlagOutput) {
		if cfg.Output.Format, err = fs.GetString(FlagOutput); err != nil {
			return nil, flagError(FlagOutput, err)
		}
	}
	if fs.Changed(FlagConfig) {
		if cfg.JSONFilePath, err = fs.GetString(FlagConfig); err != nil {
			return nil, flagError(FlagConfig, err)
		}
	}
	if fs.Changed(FlagLogLevel) {
		if cfg.Log.Level, err = fs.GetString(FlagLogLevel); err != nil {
			return nil, flagError(FlagLogLevel, err)
		}
	}
	if fs.Changed(FlagLogFile) {
		if cfg.Log.File, err = fs.GetString(FlagLogFile); err != nil {
			return nil, flagError(FlagLogFile, err)
		}
	}
	if fs.Changed(FlagSeed) {
		if cfg.Generator.Seed, err = fs.GetInt64(FlagSeed); err != nil {
			return nil, flagError(FlagSeed, err)
		}
	}

	return cfg, nil
}

func flagError(name string, err error) error {
	return fmt.Errorf("error reading flag --%s: %w", name, err)
}
