// Copyright 2024-2026 Fabian Fuchs
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package notify

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"maunium.net/go/mautrix/id"

	"github.com/fuchs-fabian/matrix-notify/pkg/htmlfmt"
)

// Transport identifies how a message reaches the room.
type Transport string

const (
	// TransportHTTP sends through the homeserver's client-server API.
	TransportHTTP Transport = "http"
	// TransportCommander delegates to the matrix-commander binary.
	TransportCommander Transport = "commander"
)

// sender is a single delivery strategy. Implementations get the full HTML
// message and the target room and perform exactly one attempt.
type sender interface {
	send(ctx context.Context, roomID id.RoomID, html string) error
}

// Notifier sends messages to one Matrix room over a fixed transport.
type Notifier struct {
	cfg    Config
	sender sender
	log    zerolog.Logger
}

// NewNotifier validates cfg and builds a Notifier for the transport it
// selects. Validation failures are *ConfigError.
func NewNotifier(cfg Config, log zerolog.Logger) (*Notifier, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log = log.With().
		Str("component", "notifier").
		Str("transport", string(cfg.Transport())).
		Stringer("room_id", cfg.RoomID).
		Logger()

	var s sender
	var err error
	switch cfg.Transport() {
	case TransportCommander:
		s = newCommanderSender(cfg.CommanderPath, cfg.timeout, log)
	default:
		s, err = newHTTPSender(cfg.HomeserverURL, cfg.AccessToken, cfg.timeout, log)
		if err != nil {
			return nil, err
		}
	}
	return &Notifier{cfg: cfg, sender: s, log: log}, nil
}

// Transport returns the transport the Notifier was built with.
func (n *Notifier) Transport() Transport {
	return n.cfg.Transport()
}

// Send delivers one HTML message to the configured room. The message may
// contain markup built with the htmlfmt package; plain text works too. One
// attempt, no retry: any failure is a *TransportError (or a *ConfigError
// for an empty message, returned before any I/O).
func (n *Notifier) Send(ctx context.Context, message string) error {
	if strings.TrimSpace(message) == "" {
		return &ConfigError{Field: "message", Reason: "cannot be empty or just whitespace"}
	}
	if err := n.sender.send(ctx, n.cfg.RoomID, message); err != nil {
		n.log.Err(err).Msg("Failed to send message")
		return err
	}
	n.log.Debug().Msg("Message sent")
	return nil
}

// SendText is a convenience for pre-formatted plain text: consecutive
// spaces and newlines are rewritten into markup that survives HTML
// rendering, then sent like Send.
func (n *Notifier) SendText(ctx context.Context, text string) error {
	return n.Send(ctx, htmlfmt.ReplaceSpacesAndNewlines(text))
}
