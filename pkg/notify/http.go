// Copyright 2024-2026 Fabian Fuchs
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package notify

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"maunium.net/go/mautrix"
	"maunium.net/go/mautrix/event"
	"maunium.net/go/mautrix/id"

	"github.com/fuchs-fabian/matrix-notify/pkg/htmlfmt"
)

// httpSender delivers messages with a PUT to the homeserver's
// /rooms/{roomID}/send/m.room.message/{txnID} endpoint, authenticated with
// the configured access token.
type httpSender struct {
	client *mautrix.Client
}

func newHTTPSender(homeserverURL, accessToken string, timeout time.Duration, log zerolog.Logger) (*httpSender, error) {
	client, err := mautrix.NewClient(homeserverURL, "", accessToken)
	if err != nil {
		return nil, &ConfigError{Field: "homeserver_url", Reason: fmt.Sprintf("invalid URL: %v", err)}
	}
	client.Log = log
	// One attempt per Send; retry policy belongs to the caller.
	client.DefaultHTTPRetries = 0
	if timeout > 0 {
		client.Client = &http.Client{Timeout: timeout}
	}
	return &httpSender{client: client}, nil
}

func (s *httpSender) send(ctx context.Context, roomID id.RoomID, html string) error {
	content := &event.MessageEventContent{
		MsgType:       event.MsgText,
		Body:          htmlfmt.PlainText(html),
		Format:        event.FormatHTML,
		FormattedBody: html,
	}
	_, err := s.client.SendMessageEvent(ctx, roomID, event.EventMessage, content)
	if err == nil {
		return nil
	}
	terr := &TransportError{Transport: TransportHTTP, Err: err}
	var httpErr mautrix.HTTPError
	if errors.As(err, &httpErr) && httpErr.Response != nil {
		terr.StatusCode = httpErr.Response.StatusCode
	}
	return terr
}
