// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks the merged [StructuredConfig] before it is used.
// Only value ranges are checked here; required fields are enforced by the
// client view in [ClientConfig.validate].
func (cfg *StructuredConfig) validate() error {
	if cfg.API.RequestTimeout < 0 {
		return ErrInvalidAPIConfigs
	}
	if cfg.Log.MaxSizeMB < 0 || cfg.Log.MaxBackups < 0 || cfg.Log.MaxAgeDays < 0 {
		return ErrInvalidLogConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.API.Server == "" || cfg.API.Version == "" {
		return ErrInvalidAPIConfigs
	}

	switch cfg.Output.Format {
	case FormatJSON, FormatYAML:
	default:
		return ErrInvalidOutputConfigs
	}

	return nil
}
