// Copyright 2024-2026 Fabian Fuchs

package notify

import (
	"errors"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestConfigUnmarshalYAML(t *testing.T) {
	t.Parallel()
	input := `
room_id: "!abc:matrix.org"
access_token: syt_secret
homeserver_url: https://matrix.example.com
encrypted: false
timeout: 15s
`
	var cfg Config
	if err := yaml.Unmarshal([]byte(input), &cfg); err != nil {
		t.Fatalf("UnmarshalYAML: %v", err)
	}
	if cfg.RoomID != "!abc:matrix.org" {
		t.Errorf("RoomID: got %q", cfg.RoomID)
	}
	if cfg.AccessToken != "syt_secret" {
		t.Errorf("AccessToken: got %q", cfg.AccessToken)
	}
	if cfg.Timeout != "15s" {
		t.Errorf("Timeout: got %q", cfg.Timeout)
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		cfg       Config
		wantField string
	}{
		{
			name:      "empty room id",
			cfg:       Config{AccessToken: "tok"},
			wantField: "room_id",
		},
		{
			name:      "room id without bang",
			cfg:       Config{RoomID: "abc:matrix.org", AccessToken: "tok"},
			wantField: "room_id",
		},
		{
			name:      "room id without colon",
			cfg:       Config{RoomID: "!abcmatrix", AccessToken: "tok"},
			wantField: "room_id",
		},
		{
			name:      "room id with two colons",
			cfg:       Config{RoomID: "!a:b:c", AccessToken: "tok"},
			wantField: "room_id",
		},
		{
			name:      "missing access token on plain path",
			cfg:       Config{RoomID: "!abc:matrix.org"},
			wantField: "access_token",
		},
		{
			name:      "whitespace access token on plain path",
			cfg:       Config{RoomID: "!abc:matrix.org", AccessToken: "   "},
			wantField: "access_token",
		},
		{
			name:      "whitespace homeserver on plain path",
			cfg:       Config{RoomID: "!abc:matrix.org", AccessToken: "tok", HomeserverURL: "  "},
			wantField: "homeserver_url",
		},
		{
			name:      "bad timeout",
			cfg:       Config{RoomID: "!abc:matrix.org", AccessToken: "tok", Timeout: "soon"},
			wantField: "timeout",
		},
		{
			name:      "negative timeout",
			cfg:       Config{RoomID: "!abc:matrix.org", AccessToken: "tok", Timeout: "-1s"},
			wantField: "timeout",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.cfg.Validate()
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("Validate: got %v, want *ConfigError", err)
			}
			if cfgErr.Field != tc.wantField {
				t.Errorf("Field: got %q, want %q", cfgErr.Field, tc.wantField)
			}
		})
	}
}

func TestConfigValidateDefaults(t *testing.T) {
	t.Parallel()
	cfg := Config{RoomID: "!abc:matrix.org", AccessToken: "tok", Timeout: "30s"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.HomeserverURL != DefaultHomeserverURL {
		t.Errorf("HomeserverURL: got %q, want default %q", cfg.HomeserverURL, DefaultHomeserverURL)
	}
	if cfg.timeout != 30*time.Second {
		t.Errorf("timeout: got %v, want 30s", cfg.timeout)
	}
}

func TestConfigValidateEncryptedSkipsCredentials(t *testing.T) {
	t.Parallel()
	// matrix-commander carries its own credentials, so token and homeserver
	// may be omitted entirely.
	cfg := Config{RoomID: "!abc:matrix.org", Encrypted: true}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.CommanderPath != DefaultCommanderPath {
		t.Errorf("CommanderPath: got %q, want default %q", cfg.CommanderPath, DefaultCommanderPath)
	}
	if cfg.Transport() != TransportCommander {
		t.Errorf("Transport: got %q, want %q", cfg.Transport(), TransportCommander)
	}
}

func TestConfigTransport(t *testing.T) {
	t.Parallel()
	plain := Config{}
	if plain.Transport() != TransportHTTP {
		t.Errorf("plain Transport: got %q", plain.Transport())
	}
	e2e := Config{Encrypted: true}
	if e2e.Transport() != TransportCommander {
		t.Errorf("encrypted Transport: got %q", e2e.Transport())
	}
}
