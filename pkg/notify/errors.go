// Copyright 2024-2026 Fabian Fuchs
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package notify

import "fmt"

// ConfigError reports configuration that is missing or invalid for the
// selected transport. It is always returned before any transport I/O.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config: %s: %s", e.Field, e.Reason)
}

// TransportError reports a failed delivery attempt: a non-2xx homeserver
// response, a network failure, or a matrix-commander run that did not exit
// cleanly. Sends are single-shot, so a TransportError always means the
// message was not confirmed delivered.
type TransportError struct {
	Transport Transport
	// StatusCode is the HTTP status for TransportHTTP failures, 0 otherwise.
	StatusCode int
	// ExitCode is the subprocess exit code for TransportCommander failures.
	// It is -1 when no exit code is known: the process could not be started,
	// or it died without exiting cleanly (e.g. killed on context deadline).
	// It is 0 for non-commander errors.
	ExitCode int
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s transport: %v", e.Transport, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
