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

import (
	"context"

	"github.com/ryndalv/skein/internal/stream"
)

// Match returns the values of all patterns matching tokens, in traversal
// order.
func (t *Trie[K, V]) Match(tokens []K) []V {
	var matches []V

	t.MatchFunc(tokens, func(value V) bool {
		matches = append(matches, value)

		return true
	})

	return matches
}

// MatchFunc calls yield for the value of every pattern matching tokens,
// lazily and in traversal order: depth first, wildcard edge before literal
// edge. Returning false from yield stops the traversal.
func (t *Trie[K, V]) MatchFunc(tokens []K, yield func(value V) bool) {
	// A slice source neither suspends nor fails.
	_ = t.MatchStream(context.Background(), stream.FromSlice(tokens), yield)
}

// MatchStream matches the tokens pulled from src, calling yield for every
// matched value as soon as it is discovered and before the next token is
// requested. Yield order is the one documented for MatchFunc. Returning
// false from yield stops the traversal early; src is then told to stop,
// unless it already reported its natural end. MatchStream returns the first
// error reported by src, if any.
func (t *Trie[K, V]) MatchStream(ctx context.Context, src stream.Source[K], yield func(value V) bool) error {
	cursor := stream.NewCursor(src)

	_, err := t.matchNode(ctx, t.root, cursor, yield)

	return err
}

// matchNode runs the dual-branch traversal below n. It owns cursor and
// releases it on every return path; passing a cursor to a recursive call
// hands it over. The bool result tells whether the traversal may go on; it
// turns false once yield asked to stop.
func (t *Trie[K, V]) matchNode(
	ctx context.Context, n *node[K, V], cursor *stream.Cursor[K], yield func(value V) bool,
) (bool, error) {
	defer cursor.Stop()

	// A node entered over a wildcard edge stands for run consecutive input
	// tokens; the edge itself accounted for the first one. Input ending
	// inside the run ends the branch, silently.
	for i := 1; i < n.run; i++ {
		if _, ok, err := cursor.Next(ctx); err != nil {
			return false, err
		} else if !ok {
			return true, nil
		}
	}

	// Yield before pulling, so a pattern ending at this depth matches the
	// input consumed so far.
	if n.hasValue && !yield(n.value) {
		return false, nil
	}

	token, ok, err := cursor.Next(ctx)
	if err != nil {
		return false, err
	}

	if !ok {
		return true, nil
	}

	literal := n.child(token)

	switch {
	case n.wildcard != nil && literal != nil:
		// Both edges accept the token. Fork the cursor so each branch
		// consumes the remaining input at its own pace, wildcard branch
		// first.
		fork := cursor.Fork()

		proceed, err := t.matchNode(ctx, n.wildcard, cursor, yield)
		if err != nil || !proceed {
			fork.Stop()

			return proceed, err
		}

		return t.matchNode(ctx, literal, fork, yield)
	case n.wildcard != nil:
		return t.matchNode(ctx, n.wildcard, cursor, yield)
	case literal != nil:
		return t.matchNode(ctx, literal, cursor, yield)
	default:
		return true, nil
	}
}
