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
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ryndalv/skein/internal/patterns/config"
	"github.com/ryndalv/skein/internal/patterns/pattern"
	"github.com/ryndalv/skein/internal/seqtrie"
	"github.com/ryndalv/skein/internal/skein"
	"github.com/ryndalv/skein/internal/x/errorchain"
)

func NewPatternFactory(logger zerolog.Logger) pattern.Factory {
	return &patternFactory{l: logger}
}

type patternFactory struct {
	l zerolog.Logger
}

func (f *patternFactory) CreatePattern(srcID string, conf config.Pattern) (pattern.Pattern, error) {
	hash, err := conf.Hash()
	if err != nil {
		return nil, err
	}

	sequence, err := f.compileSequence(conf.ID, conf.Sequence)
	if err != nil {
		return nil, err
	}

	return &patternImpl{
		id:         conf.ID,
		srcID:      srcID,
		sequence:   sequence,
		expression: expressionFor(sequence),
		value:      conf.Value,
		hash:       hash,
	}, nil
}

// compileSequence builds the canonical sequence: adjacent wildcards are
// merged into a single one and counts below one are reported and raised
// to one.
func (f *patternFactory) compileSequence(
	id string, segments []config.Segment,
) (seqtrie.Path[string], error) {
	path := make(seqtrie.Path[string], 0, len(segments))

	for idx, seg := range segments {
		switch {
		case seg.IsWildcard():
			count := *seg.Wildcard
			if count < 1 {
				f.l.Warn().
					Str("_id", id).
					Int("_count", count).
					Msg("Invalid wildcard count, using 1")

				count = 1
			}

			if last := len(path) - 1; last >= 0 && path[last].IsWildcard() {
				path[last] = seqtrie.Wildcard[string](path[last].Count() + count)

				continue
			}

			path = append(path, seqtrie.Wildcard[string](count))
		case seg.Token != nil:
			path = append(path, seqtrie.Literal(*seg.Token))
		default:
			return nil, errorchain.NewWithMessagef(skein.ErrConfiguration,
				"segment %d of pattern ID='%s' declares neither token nor wildcard", idx, id)
		}
	}

	return path, nil
}

// expressionFor renders a sequence so that distinct canonical sequences
// yield distinct strings. Tokens are space separated, wildcards appear as
// *<count> and literals which would be ambiguous are escaped.
func expressionFor(path seqtrie.Path[string]) string {
	var sb strings.Builder

	for idx, seg := range path {
		if idx > 0 {
			sb.WriteByte(' ')
		}

		if seg.IsWildcard() {
			fmt.Fprintf(&sb, "*%d", seg.Count())

			continue
		}

		sb.WriteString(escapeToken(seg.Token()))
	}

	return sb.String()
}

func escapeToken(token string) string {
	token = strings.ReplaceAll(token, `\`, `\\`)
	token = strings.ReplaceAll(token, " ", `\ `)

	if strings.HasPrefix(token, "*") {
		token = `\` + token
	}

	return token
}
