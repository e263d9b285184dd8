// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// ClientConfig is the configuration of the command-line client, a view over
// the adapter section of [StructuredConfig].
type ClientConfig struct {
	// Adapter contains the server address, request timeout and token.
	Adapter Adapter
	// Log contains logging settings.
	Log Log
}

// GetClientConfig builds and validates the client configuration from
// environment variables and the optional JSON file named by CONFIG.
//
// The client does not share the server's command-line flags: it owns its
// own subcommands.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withJSON().
		merge()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		Adapter: cfg.Adapter,
		Log:     cfg.Log,
	}
	if clientCfg.Adapter.HTTPAddress == "" {
		clientCfg.Adapter.HTTPAddress = DefaultHTTPAddress
	}
	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = DefaultClientTimeout
	}

	return clientCfg, clientCfg.validate()
}
