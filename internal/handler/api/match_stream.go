// Copyright 2025 Arvid Ryndal <arvid@ryndal.dev>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/ryndalv/skein/internal/patterns/pattern"
	"github.com/ryndalv/skein/internal/stream"
	"github.com/ryndalv/skein/internal/x/stringx"
)

const closeTimeout = 5 * time.Second

// streamMatch is pushed to the client for every pattern discovered while
// the token stream is consumed.
type streamMatch struct {
	Pattern patternInfo `json:"pattern"`
}

// streamControl terminates the token stream. Every text message is a single
// raw token, unless it decodes to a control message with done set.
type streamControl struct {
	Done bool `json:"done"`
}

// matchStream matches against tokens arriving over a websocket connection.
// Tokens are pulled from the connection only when the matcher asks for the
// next one, and matches are pushed as soon as they are known. Reading and
// writing strictly alternate on the handler goroutine, keeping the
// connection usage within the concurrency limits of the websocket package.
func (h *handler) matchStream(rw http.ResponseWriter, req *http.Request) {
	conn, err := h.upgrader.Upgrade(rw, req, nil)
	if err != nil {
		// Upgrade has already answered the request
		zerolog.Ctx(req.Context()).Debug().Err(err).Msg("Upgrading connection failed")

		return
	}

	defer conn.Close()

	ctx := req.Context()
	logger := zerolog.Ctx(ctx).With().Str("_session_id", uuid.NewString()).Logger()
	ctx = logger.WithContext(ctx)

	logger.Debug().Msg("Match stream started")

	src := stream.FromFunc(func(_ context.Context) (string, bool, error) {
		return nextToken(conn)
	}, nil)

	err = h.repo.MatchStream(ctx, src, func(pat pattern.Pattern) bool {
		if err := conn.WriteJSON(streamMatch{Pattern: toPatternInfo(pat)}); err != nil {
			logger.Debug().Err(err).Msg("Pushing match failed")

			return false
		}

		return true
	})

	closeCode := websocket.CloseNormalClosure

	if err != nil {
		logger.Debug().Err(err).Msg("Match stream failed")

		closeCode = websocket.CloseInternalServerErr
	} else {
		logger.Debug().Msg("Match stream finished")
	}

	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(closeCode, ""), time.Now().Add(closeTimeout))
}

func nextToken(conn *websocket.Conn) (string, bool, error) {
	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return "", false, nil
			}

			return "", false, err
		}

		if msgType != websocket.TextMessage {
			continue
		}

		if len(data) != 0 && data[0] == '{' {
			var ctl streamControl

			if json.Unmarshal(data, &ctl) == nil && ctl.Done {
				return "", false, nil
			}
		}

		return stringx.ToString(data), true, nil
	}
}
