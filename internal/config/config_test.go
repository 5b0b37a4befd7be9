// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_DefaultValues(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.Auth.BaseURL)
	assert.Empty(t, cfg.Auth.IDToken)
	assert.Empty(t, cfg.Database.URL)
	assert.Empty(t, cfg.Log.File)
	assert.Equal(t, 0, cfg.Log.Level)
}

func TestNewConfig_EnvironmentOverrides(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		expected func(*Config)
	}{
		{
			name: "auth override",
			envVars: map[string]string{
				"AUTH_BASE_URL": "https://api.sporetrack.dev",
				"AUTH_ID_TOKEN": "demo-token",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "https://api.sporetrack.dev", cfg.Auth.BaseURL)
				assert.Equal(t, "demo-token", cfg.Auth.IDToken)
			},
		},
		{
			name: "database override",
			envVars: map[string]string{
				"TURSO_URL": "libsql://sporetrack.turso.io",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "libsql://sporetrack.turso.io", cfg.Database.URL)
			},
		},
		{
			name: "log override",
			envVars: map[string]string{
				"LOG_FILE":  "/tmp/tracker.log",
				"LOG_LEVEL": "-1",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "/tmp/tracker.log", cfg.Log.File)
				assert.Equal(t, -1, cfg.Log.Level)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.envVars {
				t.Setenv(key, value)
			}

			cfg, err := NewConfig()
			require.NoError(t, err)

			tt.expected(cfg)
		})
	}
}
