// Copyright 2024-2026 Fabian Fuchs
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Command matrix-notify sends one formatted message to a Matrix room.
//
// Without end-to-end encryption it talks directly to the homeserver's
// client API using an access token. With --use-e2e it delegates to the
// matrix-commander binary, which must have been set up (login, credentials
// store, session verification) beforehand.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"go.mau.fi/util/exerrors"
	"go.mau.fi/zeroconfig"
	"gopkg.in/yaml.v3"
	flag "maunium.net/go/mauflag"
	"maunium.net/go/mautrix/id"

	"github.com/fuchs-fabian/matrix-notify/pkg/notify"
)

// These are filled at build time with -ldflags.
var (
	Tag       = "unknown"
	Commit    = "unknown"
	BuildTime = "unknown"
)

var (
	configPath    = flag.MakeFull("c", "config", "Path to an optional YAML config file. Flags override its values.", "").String()
	useE2E        = flag.MakeFull("e", "use-e2e", "Use end-to-end encryption via matrix-commander. (case-insensitive, default: 'false')", "").String()
	message       = flag.MakeFull("m", "message", "The message to send to the Matrix room. May contain HTML.", "").String()
	roomID        = flag.MakeFull("r", "room-id", "Matrix room ID. (something like '!xyz:matrix.org')", "").String()
	homeserverURL = flag.MakeFull("u", "homeserver-url", "Matrix homeserver URL. Not needed with --use-e2e.", "").String()
	accessToken   = flag.MakeFull("t", "access-token", "Matrix access token. Not needed with --use-e2e.", "").String()
	commanderPath = flag.MakeFull("x", "commander", "Path to the matrix-commander binary.", "").String()
	timeout       = flag.MakeFull("T", "timeout", "Per-send deadline, like '30s'.", "").String()
	wantHelp, _   = flag.MakeHelpFlag()
)

const (
	exitTransport = 1
	exitUsage     = 2
)

func main() {
	flag.SetHelpTitles(
		"matrix-notify - Send a message to a Matrix room, optionally with end-to-end encryption.",
		"matrix-notify [-h] [-c <path>] [-e <bool>] -m <message> -r <room-id> [-u <url>] [-t <token>]",
	)
	if err := flag.Parse(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.PrintHelp()
		os.Exit(exitUsage)
	} else if *wantHelp {
		flag.PrintHelp()
		os.Exit(0)
	}

	cfg, err := buildConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUsage)
	}

	log := exerrors.Must(compileLogger(cfg))
	log.Debug().
		Str("tag", Tag).
		Str("commit", Commit).
		Str("build_time", BuildTime).
		Msg("matrix-notify starting")

	n, err := notify.NewNotifier(*cfg, *log)
	if err != nil {
		log.Error().Err(err).Msg("Invalid configuration")
		os.Exit(exitUsage)
	}

	if err := n.Send(context.Background(), *message); err != nil {
		log.Error().Err(err).Msg("Failed to send message")
		var cfgErr *notify.ConfigError
		if errors.As(err, &cfgErr) {
			os.Exit(exitUsage)
		}
		os.Exit(exitTransport)
	}
	log.Info().
		Stringer("room_id", cfg.RoomID).
		Str("transport", string(n.Transport())).
		Msg("Message sent")
}

// buildConfig loads the optional config file and overlays any flag that was
// given on the command line. Flags always win.
func buildConfig() (*notify.Config, error) {
	var cfg notify.Config
	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if *roomID != "" {
		cfg.RoomID = id.RoomID(*roomID)
	}
	if *homeserverURL != "" {
		cfg.HomeserverURL = *homeserverURL
	}
	if *accessToken != "" {
		cfg.AccessToken = *accessToken
	}
	if *commanderPath != "" {
		cfg.CommanderPath = *commanderPath
	}
	if *timeout != "" {
		cfg.Timeout = *timeout
	}
	if *useE2E != "" {
		e2e, err := strconv.ParseBool(strings.ToLower(strings.TrimSpace(*useE2E)))
		if err != nil {
			return nil, fmt.Errorf("invalid --use-e2e value %q", *useE2E)
		}
		cfg.Encrypted = e2e
	}

	if strings.TrimSpace(*message) == "" {
		return nil, errors.New("--message is required")
	}
	if cfg.RoomID == "" {
		return nil, errors.New("--room-id is required")
	}
	if !cfg.Encrypted && strings.TrimSpace(cfg.AccessToken) == "" {
		return nil, errors.New("--access-token is required for sending messages without E2E")
	}
	return &cfg, nil
}

// compileLogger builds the zerolog logger from the config file's logging
// section, falling back to pretty stderr output at info level.
func compileLogger(cfg *notify.Config) (*zerolog.Logger, error) {
	logCfg := cfg.Logging
	if logCfg == nil {
		minLevel := zerolog.InfoLevel
		logCfg = &zeroconfig.Config{
			MinLevel: &minLevel,
			Writers: []zeroconfig.WriterConfig{{
				Type:   zeroconfig.WriterTypeStderr,
				Format: zeroconfig.LogFormatPrettyColored,
			}},
		}
	}
	return logCfg.Compile()
}
