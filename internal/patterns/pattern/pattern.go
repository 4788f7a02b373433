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

package pattern

import (
	"github.com/ryndalv/skein/internal/seqtrie"
)

// Pattern is a single loaded pattern, compiled into its canonical sequence.
type Pattern interface {
	// ID returns the identifier declared in the pattern set.
	ID() string

	// SrcID identifies the pattern set instance the pattern was loaded from.
	SrcID() string

	// Sequence returns the canonical compiled sequence, with adjacent
	// wildcards merged and counts normalized.
	Sequence() seqtrie.Path[string]

	// Expression returns the canonical textual form of the sequence.
	Expression() string

	// Value returns the opaque value attached to the pattern.
	Value() any

	// SameAs reports whether other refers to the same pattern, ignoring
	// its definition.
	SameAs(other Pattern) bool

	// EqualTo reports whether other has the same definition.
	EqualTo(other Pattern) bool
}
