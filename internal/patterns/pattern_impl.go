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

package patterns

import (
	"bytes"

	"github.com/ryndalv/skein/internal/patterns/pattern"
	"github.com/ryndalv/skein/internal/seqtrie"
)

type patternImpl struct {
	id         string
	srcID      string
	sequence   seqtrie.Path[string]
	expression string
	value      any
	hash       []byte
}

func (p *patternImpl) ID() string { return p.id }

func (p *patternImpl) SrcID() string { return p.srcID }

func (p *patternImpl) Sequence() seqtrie.Path[string] { return p.sequence }

func (p *patternImpl) Expression() string { return p.expression }

func (p *patternImpl) Value() any { return p.value }

func (p *patternImpl) SameAs(other pattern.Pattern) bool {
	return p.ID() == other.ID() && p.SrcID() == other.SrcID()
}

func (p *patternImpl) EqualTo(other pattern.Pattern) bool {
	loaded, ok := other.(*patternImpl)
	if !ok {
		return false
	}

	return bytes.Equal(p.hash, loaded.hash)
}
