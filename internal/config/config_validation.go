// SPDX-License-Identifier: Apache-2.0

package config

import "strings"

// ValidateServer checks that the merged configuration carries everything the
// server binary needs before it starts listening.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) ValidateServer() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Auth.TokenSignKey == "" {
		return ErrInvalidAuthConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.EndpointURL == "" {
		return ErrMissingClientEndpoint
	}

	if cfg.Adapter.APIKey == "" {
		return ErrMissingClientAPIKey
	}

	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	return nil
}
