// Copyright 2024-2026 Fabian Fuchs
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package notify sends messages to a single Matrix room.
//
// It is a one-call primitive: build a [Notifier] from a [Config], call
// [Notifier.Send] once per message. There is no session, no sync loop, no
// retry. Two transports are supported, selected by Config.Encrypted:
//
//   - [TransportHTTP] sends directly through the homeserver's client API
//     as the configured access token. Messages arrive unencrypted, so this
//     only works in unencrypted rooms.
//   - [TransportCommander] shells out to matrix-commander, which owns its
//     own credentials store, session and the entire end-to-end-encryption
//     protocol. The caller must have run matrix-commander's login and
//     verification setup beforehand.
//
// Messages are HTML bodies (org.matrix.custom.html). The htmlfmt package
// builds those; the plain-text fallback sent alongside is derived
// automatically.
//
// # Errors
//
// Configuration problems surface as [*ConfigError] before any I/O happens.
// Delivery failures surface as [*TransportError] wrapping the cause. A
// Notifier never retries; retry policy belongs to the caller.
//
// # Concurrency
//
// A Notifier holds no mutable state after construction, so concurrent
// Send calls are independent and need no external locking.
package notify
