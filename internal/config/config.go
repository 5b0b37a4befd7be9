// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config contains tracker configuration parameters.
type Config struct {
	Auth     Auth     `envPrefix:"AUTH_"`
	Database Database `envPrefix:"TURSO_"`
	Log      Log      `envPrefix:"LOG_"`
}

// Auth contains authentication endpoint parameters.
type Auth struct {
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8080"`
	// IDToken is the demo identity token. A real deployment replaces the
	// static source with an identity-provider flow.
	IDToken string `env:"ID_TOKEN"`
}

// Database contains libsql connection parameters. An empty URL runs the
// tracker on in-memory demo data.
type Database struct {
	URL string `env:"URL"`
}

// Log contains log output parameters. The TUI owns stdout, so logs go to a
// file; an empty path disables logging.
type Log struct {
	File  string `env:"FILE"`
	Level int    `env:"LEVEL" envDefault:"0"`
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
