// Copyright 2023-2025 Arvid Ryndal <arvid@ryndal.dev>
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

package seqtrie

import "github.com/rs/zerolog"

type Option[K comparable, V any] func(t *Trie[K, V])

// WithLogger sets the logger used for diagnostics, like reports about
// normalized wildcard counts. Defaults to a no-op logger.
func WithLogger[K comparable, V any](logger zerolog.Logger) Option[K, V] {
	return func(t *Trie[K, V]) {
		t.log = logger
	}
}
