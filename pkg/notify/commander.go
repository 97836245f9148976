// Copyright 2024-2026 Fabian Fuchs
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package notify

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"maunium.net/go/mautrix/id"
)

// commandRunner runs one external command to completion. It exists so tests
// can inject a fake instead of spawning real processes.
type commandRunner interface {
	run(ctx context.Context, name string, args ...string) error
}

// execRunner is the production runner backed by os/exec. Stderr is captured
// and attached to the error since matrix-commander reports its failures
// there.
type execRunner struct{}

func (execRunner) run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	err := cmd.Run()
	if err == nil {
		return nil
	}
	if msg := strings.TrimSpace(stderr.String()); msg != "" {
		return fmt.Errorf("%w: %s", err, msg)
	}
	return err
}

// commanderSender delivers messages by invoking matrix-commander, which owns
// the whole encrypted session (credentials store, device keys, verification).
type commanderSender struct {
	path    string
	timeout time.Duration
	runner  commandRunner
	log     zerolog.Logger
}

func newCommanderSender(path string, timeout time.Duration, log zerolog.Logger) *commanderSender {
	return &commanderSender{
		path:    path,
		timeout: timeout,
		runner:  execRunner{},
		log:     log,
	}
}

func (s *commanderSender) send(ctx context.Context, roomID id.RoomID, html string) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	args := []string{"-m", html, "--room", string(roomID), "--html"}
	s.log.Debug().Str("path", s.path).Msg("Running matrix-commander")
	err := s.runner.run(ctx, s.path, args...)
	if err == nil {
		return nil
	}

	terr := &TransportError{Transport: TransportCommander, ExitCode: -1, Err: err}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		terr.ExitCode = exitErr.ExitCode()
	}
	return terr
}
