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
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/ryndalv/skein/internal/cache"
	"github.com/ryndalv/skein/internal/skein"
	"github.com/ryndalv/skein/internal/x/errorchain"
	"github.com/ryndalv/skein/internal/x/stringx"
)

// matchResponseTTL bounds the time a cached response can outlive the
// revision it was computed for. The revision is part of the cache key, so
// entries for stale revisions just expire unused.
const matchResponseTTL = 30 * time.Second

type matchRequest struct {
	Tokens []string `json:"tokens"`
}

type matchResponse struct {
	Revision string        `json:"revision"`
	Matches  []patternInfo `json:"matches"`
}

func (h *handler) match(rw http.ResponseWriter, req *http.Request) {
	var body matchRequest

	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		h.eh.HandleError(rw, req,
			errorchain.NewWithMessage(skein.ErrArgument, "failed parsing request body").CausedBy(err))

		return
	}

	ctx := req.Context()
	cch := cache.Ctx(ctx)
	revision := h.repo.Revision()
	cacheKey := matchCacheKey(revision, body.Tokens)

	if data, err := cch.Get(ctx, cacheKey); err == nil {
		writeJSON(rw, data)

		return
	}

	matches := h.repo.Match(ctx, body.Tokens)
	res := matchResponse{Revision: revision, Matches: make([]patternInfo, len(matches))}

	for i, pat := range matches {
		res.Matches[i] = toPatternInfo(pat)
	}

	data, err := json.Marshal(res)
	if err != nil {
		h.eh.HandleError(rw, req, errorchain.New(skein.ErrInternal).CausedBy(err))

		return
	}

	if err = cch.Set(ctx, cacheKey, data, matchResponseTTL); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("Failed caching match response")
	}

	writeJSON(rw, data)
}

func matchCacheKey(revision string, tokens []string) string {
	digest := sha256.New()
	digest.Write(stringx.ToBytes(revision))

	for _, token := range tokens {
		digest.Write([]byte{0x1f})
		digest.Write(stringx.ToBytes(token))
	}

	return "match:" + hex.EncodeToString(digest.Sum(nil))
}
