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
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/justinas/alice"

	"github.com/ryndalv/skein/internal/handler/middleware/http/errorhandler"
	"github.com/ryndalv/skein/internal/handler/middleware/http/methodfilter"
	"github.com/ryndalv/skein/internal/patterns/pattern"
)

const (
	EndpointMatch         = "/v1/match"
	EndpointMatchStream   = "/v1/match/stream"
	EndpointPatterns      = "/v1/patterns"
	EndpointPattern       = "/v1/patterns/{id}"
	EndpointPatternsStats = "/v1/patterns/stats"
)

type handler struct {
	repo     pattern.Repository
	eh       errorhandler.ErrorHandler
	upgrader websocket.Upgrader
}

func newAPIHandler(repo pattern.Repository, eh errorhandler.ErrorHandler) http.Handler {
	h := &handler{repo: repo, eh: eh}
	mux := http.NewServeMux()

	mux.Handle(EndpointMatch, alice.New(methodfilter.New(http.MethodPost)).ThenFunc(h.match))
	mux.Handle(EndpointMatchStream, alice.New(methodfilter.New(http.MethodGet)).ThenFunc(h.matchStream))
	mux.Handle(EndpointPatterns, alice.New(methodfilter.New(http.MethodGet)).ThenFunc(h.listPatterns))
	mux.Handle(EndpointPattern, alice.New(methodfilter.New(http.MethodGet)).ThenFunc(h.getPattern))
	mux.Handle(EndpointPatternsStats, alice.New(methodfilter.New(http.MethodGet)).ThenFunc(h.stats))

	return mux
}

// patternInfo is the wire representation of a single loaded pattern.
type patternInfo struct {
	ID         string `json:"id"`
	SrcID      string `json:"src_id"`
	Expression string `json:"expression"`
	Value      any    `json:"value,omitempty"`
}

func toPatternInfo(pat pattern.Pattern) patternInfo {
	return patternInfo{
		ID:         pat.ID(),
		SrcID:      pat.SrcID(),
		Expression: pat.Expression(),
		Value:      pat.Value(),
	}
}

func writeJSON(rw http.ResponseWriter, data []byte) {
	rw.Header().Set("Content-Type", "application/json")

	_, _ = rw.Write(data)
}
