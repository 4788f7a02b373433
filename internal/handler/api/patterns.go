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

	"github.com/goccy/go-json"

	"github.com/ryndalv/skein/internal/skein"
	"github.com/ryndalv/skein/internal/x/errorchain"
)

type patternsResponse struct {
	Revision string        `json:"revision"`
	Patterns []patternInfo `json:"patterns"`
}

func (h *handler) listPatterns(rw http.ResponseWriter, req *http.Request) {
	loaded := h.repo.Patterns()
	res := patternsResponse{
		Revision: h.repo.Revision(),
		Patterns: make([]patternInfo, len(loaded)),
	}

	for i, pat := range loaded {
		res.Patterns[i] = toPatternInfo(pat)
	}

	data, err := json.Marshal(res)
	if err != nil {
		h.eh.HandleError(rw, req, errorchain.New(skein.ErrInternal).CausedBy(err))

		return
	}

	writeJSON(rw, data)
}

func (h *handler) getPattern(rw http.ResponseWriter, req *http.Request) {
	pat, err := h.repo.Get(req.PathValue("id"))
	if err != nil {
		h.eh.HandleError(rw, req, err)

		return
	}

	data, err := json.Marshal(toPatternInfo(pat))
	if err != nil {
		h.eh.HandleError(rw, req, errorchain.New(skein.ErrInternal).CausedBy(err))

		return
	}

	writeJSON(rw, data)
}

func (h *handler) stats(rw http.ResponseWriter, req *http.Request) {
	data, err := json.Marshal(h.repo.Stats())
	if err != nil {
		h.eh.HandleError(rw, req, errorchain.New(skein.ErrInternal).CausedBy(err))

		return
	}

	writeJSON(rw, data)
}
