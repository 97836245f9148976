// Copyright 2024-2026 Fabian Fuchs

package notify

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.mau.fi/zeroconfig"
	"gopkg.in/yaml.v3"
	"maunium.net/go/mautrix/id"
)

// DefaultHomeserverURL is the client API base URL of the public matrix.org
// homeserver, used when no homeserver is configured.
const DefaultHomeserverURL = "https://matrix-client.matrix.org"

// DefaultCommanderPath is the binary invoked for encrypted sends. It is
// looked up in $PATH unless the config points at an absolute path.
const DefaultCommanderPath = "matrix-commander"

// Room IDs start with '!' and carry exactly one ':' separating the opaque
// local part from the homeserver domain.
var roomIDRe = regexp.MustCompile(`^![^:]+:[^:]+$`)

// Config holds everything a Notifier needs. It is immutable after
// NewNotifier; a Notifier never writes to it.
type Config struct {
	// RoomID is the target room. The sending account must already have
	// joined it.
	RoomID id.RoomID `yaml:"room_id"`

	// AccessToken and HomeserverURL authenticate the plain (non-encrypted)
	// path. Both may be empty when Encrypted is set, since matrix-commander
	// carries its own credentials store.
	AccessToken   string `yaml:"access_token"`
	HomeserverURL string `yaml:"homeserver_url"`

	// Encrypted selects the transport: false sends directly through the
	// homeserver's client API, true delegates to matrix-commander.
	Encrypted bool `yaml:"encrypted"`

	// CommanderPath overrides the matrix-commander binary location.
	CommanderPath string `yaml:"commander_path"`

	// Timeout bounds a single send (HTTP round trip or subprocess run).
	// Empty or "0" means no deadline beyond the caller's context.
	Timeout string `yaml:"timeout"`

	// Logging is only consumed by the CLI; library callers inject their own
	// zerolog.Logger into NewNotifier.
	Logging *zeroconfig.Config `yaml:"logging"`

	timeout time.Duration `yaml:"-"`
}

func (c *Config) UnmarshalYAML(node *yaml.Node) error {
	type rawConfig Config
	return node.Decode((*rawConfig)(c))
}

// Transport returns the transport the config selects.
func (c *Config) Transport() Transport {
	if c.Encrypted {
		return TransportCommander
	}
	return TransportHTTP
}

// Validate applies defaults and checks that every field the selected
// transport needs is present. It returns a *ConfigError on the first
// problem found.
func (c *Config) Validate() error {
	if strings.TrimSpace(string(c.RoomID)) == "" {
		return &ConfigError{Field: "room_id", Reason: "cannot be empty or just whitespace"}
	}
	if !roomIDRe.MatchString(string(c.RoomID)) {
		return &ConfigError{Field: "room_id", Reason: "must start with '!' and contain a ':'"}
	}

	if c.Timeout != "" {
		d, err := time.ParseDuration(c.Timeout)
		if err != nil {
			return &ConfigError{Field: "timeout", Reason: "invalid duration " + strconv.Quote(c.Timeout)}
		}
		if d < 0 {
			return &ConfigError{Field: "timeout", Reason: "must be >= 0"}
		}
		c.timeout = d
	}

	if c.Encrypted {
		if c.CommanderPath == "" {
			c.CommanderPath = DefaultCommanderPath
		}
		return nil
	}

	if c.HomeserverURL == "" {
		c.HomeserverURL = DefaultHomeserverURL
	}
	if strings.TrimSpace(c.HomeserverURL) == "" {
		return &ConfigError{Field: "homeserver_url", Reason: "cannot be empty or just whitespace"}
	}
	if strings.TrimSpace(c.AccessToken) == "" {
		return &ConfigError{Field: "access_token", Reason: "cannot be empty or just whitespace"}
	}
	return nil
}
