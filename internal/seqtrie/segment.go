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

import "fmt"

// Segment is one element of a pattern path. It is either a literal token,
// compared by equality against input tokens, or a wildcard standing for a
// fixed number of consecutive input tokens of arbitrary value.
type Segment[K comparable] struct {
	token    K
	count    int
	wildcard bool
}

// Path is a sequence of segments addressing one slot in the trie.
type Path[K comparable] []Segment[K]

// Literal creates a segment matching exactly the given token.
func Literal[K comparable](token K) Segment[K] {
	return Segment[K]{token: token}
}

// Wildcard creates a segment matching count consecutive input tokens of any
// value. Counts below one are declared invalid and are normalized to one
// when the segment is consumed by a trie operation.
func Wildcard[K comparable](count int) Segment[K] {
	return Segment[K]{wildcard: true, count: count}
}

// IsWildcard reports whether the segment is a wildcard.
func (s Segment[K]) IsWildcard() bool { return s.wildcard }

// Token returns the literal token. It is meaningless for wildcard segments.
func (s Segment[K]) Token() K { return s.token }

// Count returns the declared wildcard count, without normalization.
func (s Segment[K]) Count() int { return s.count }

func (s Segment[K]) String() string {
	if s.wildcard {
		return fmt.Sprintf("*%d", s.count)
	}

	return fmt.Sprintf("%v", s.token)
}
