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

	"github.com/rs/zerolog"

	"github.com/ryndalv/skein/internal/stream"
)

type (
	// Entry pairs a path with the value stored under it.
	Entry[K comparable, V any] struct {
		Path  Path[K]
		Value V
	}

	// Trie maps token sequences containing counted wildcards to values.
	// Wildcard runs are kept in a canonical decomposition: a chain node
	// boundary exists only where some live entry or branch demands one.
	// Instances are not safe for concurrent use.
	Trie[K comparable, V any] struct {
		root *node[K, V]
		size int
		log  zerolog.Logger
	}
)

// New creates an empty trie.
func New[K comparable, V any](opts ...Option[K, V]) *Trie[K, V] {
	t := &Trie[K, V]{root: &node[K, V]{}, log: zerolog.Nop()}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// runLength returns the number of input tokens seg stands for. Counts below
// one are invalid; they are reported and treated as one.
func (t *Trie[K, V]) runLength(seg Segment[K]) int {
	if seg.count >= 1 {
		return seg.count
	}

	t.log.Warn().
		Int("_count", seg.count).
		Msg("Invalid wildcard count, using 1")

	return 1
}

// Set stores value at path, overwriting any previous value there.
func (t *Trie[K, V]) Set(path Path[K], value V) {
	t.SetFn(path, func(_ V, _ bool) V { return value })
}

// SetFn stores the value produced by fn at path. fn receives the previous
// value and whether one existed; it must not touch the trie itself.
func (t *Trie[K, V]) SetFn(path Path[K], fn func(previous V, existed bool) V) {
	n := t.hardSeek(path)

	value := fn(n.value, n.hasValue)

	if !n.hasValue {
		n.hasValue = true
		t.size++
	}

	n.value = value
}

// SetAll stores every given entry.
func (t *Trie[K, V]) SetAll(entries []Entry[K, V]) {
	for _, entry := range entries {
		t.Set(entry.Path, entry.Value)
	}
}

// Get returns the value stored exactly at path.
func (t *Trie[K, V]) Get(path Path[K]) (V, bool) {
	n, found := t.softSeek(path, nil)
	if !found {
		var zero V

		return zero, false
	}

	return n.value, true
}

// Has reports whether a value is stored exactly at path.
func (t *Trie[K, V]) Has(path Path[K]) bool {
	_, found := t.softSeek(path, nil)

	return found
}

// Delete removes the value stored exactly at path and reports whether one
// was removed. Branches left empty are pruned and wildcard runs split only
// for the removed entry are folded together again.
func (t *Trie[K, V]) Delete(path Path[K]) bool {
	trace := make([]crumb[K, V], 0, len(path))

	n, found := t.softSeek(path, &trace)
	if !found {
		return false
	}

	var zero V

	n.value = zero
	n.hasValue = false
	t.size--

	idx := len(trace)
	for idx > 0 && n.empty() {
		c := trace[idx-1]
		if c.wildcard {
			c.parent.wildcard = nil
		} else {
			delete(c.parent.children, c.token)
		}

		idx--
		n = c.parent
	}

	// A run node left holding nothing but its wildcard edge marks a boundary
	// no entry demands anymore.
	if idx > 0 && n.run > 0 && !n.hasValue && len(n.children) == 0 && n.wildcard != nil {
		n.mergeRunInto(trace[idx-1].parent)
	}

	return true
}

// Clear drops all entries.
func (t *Trie[K, V]) Clear() {
	t.root = &node[K, V]{}
	t.size = 0
}

// Size returns the number of stored values.
func (t *Trie[K, V]) Size() int { return t.size }

// Empty reports whether the trie holds neither values nor structure.
func (t *Trie[K, V]) Empty() bool { return t.root.empty() }

// Clone returns a deep copy sharing no nodes with the original. Values are
// copied shallowly.
func (t *Trie[K, V]) Clone() *Trie[K, V] {
	return &Trie[K, V]{root: t.root.clone(), size: t.size, log: t.log}
}

// Equal reports whether both tries store the same entries over the same
// structure. Values are compared with reflect.DeepEqual.
func (t *Trie[K, V]) Equal(other *Trie[K, V]) bool {
	return t.size == other.size && t.root.equal(other.root)
}

// SetFrom collects path segments from src and stores value at the resulting
// path. The trie stays untouched if the source fails.
func (t *Trie[K, V]) SetFrom(ctx context.Context, src stream.Source[Segment[K]], value V) error {
	path, err := stream.Collect(ctx, src)
	if err != nil {
		return err
	}

	t.Set(path, value)

	return nil
}

// SetFnFrom is the suspending variant of SetFn.
func (t *Trie[K, V]) SetFnFrom(
	ctx context.Context, src stream.Source[Segment[K]], fn func(previous V, existed bool) V,
) error {
	path, err := stream.Collect(ctx, src)
	if err != nil {
		return err
	}

	t.SetFn(path, fn)

	return nil
}

// SetAllFrom stores every entry produced by src.
func (t *Trie[K, V]) SetAllFrom(ctx context.Context, src stream.Source[Entry[K, V]]) error {
	entries, err := stream.Collect(ctx, src)
	if err != nil {
		return err
	}

	t.SetAll(entries)

	return nil
}

// GetFrom is the suspending variant of Get.
func (t *Trie[K, V]) GetFrom(ctx context.Context, src stream.Source[Segment[K]]) (V, bool, error) {
	path, err := stream.Collect(ctx, src)
	if err != nil {
		var zero V

		return zero, false, err
	}

	value, found := t.Get(path)

	return value, found, nil
}

// HasFrom is the suspending variant of Has.
func (t *Trie[K, V]) HasFrom(ctx context.Context, src stream.Source[Segment[K]]) (bool, error) {
	path, err := stream.Collect(ctx, src)
	if err != nil {
		return false, err
	}

	return t.Has(path), nil
}

// DeleteFrom is the suspending variant of Delete.
func (t *Trie[K, V]) DeleteFrom(ctx context.Context, src stream.Source[Segment[K]]) (bool, error) {
	path, err := stream.Collect(ctx, src)
	if err != nil {
		return false, err
	}

	return t.Delete(path), nil
}

// hardSeek walks to the node addressed by path, creating whatever the walk
// is missing. pending tracks how many requested wildcard tokens the chain
// walked so far does not cover yet; literal segments and the path end force
// it to be settled.
func (t *Trie[K, V]) hardSeek(path Path[K]) *node[K, V] {
	cur := t.root
	pending := 0

	for _, seg := range path {
		if seg.wildcard {
			pending += t.runLength(seg)

			for cur.wildcard != nil && cur.wildcard.run <= pending {
				cur = cur.wildcard
				pending -= cur.run
			}

			continue
		}

		cur = cur.settleRun(pending)
		pending = 0

		child := cur.child(seg.token)
		if child == nil {
			child = &node[K, V]{}
			cur.addChild(seg.token, child)
		}

		cur = child
	}

	return cur.settleRun(pending)
}

// softSeek walks to the node addressed by path following existing edges
// only. Wildcard runs must come out even: a literal segment or the path end
// reached with covered and requested counts apart means there is no entry at
// this exact path. When trace is given, every traversed edge is recorded.
func (t *Trie[K, V]) softSeek(path Path[K], trace *[]crumb[K, V]) (*node[K, V], bool) {
	cur := t.root
	pending := 0

	for _, seg := range path {
		if seg.wildcard {
			pending += t.runLength(seg)

			for cur.wildcard != nil && cur.wildcard.run <= pending {
				if trace != nil {
					*trace = append(*trace, crumb[K, V]{parent: cur, wildcard: true})
				}

				cur = cur.wildcard
				pending -= cur.run
			}

			continue
		}

		if pending != 0 {
			return nil, false
		}

		child := cur.child(seg.token)
		if child == nil {
			return nil, false
		}

		if trace != nil {
			*trace = append(*trace, crumb[K, V]{parent: cur, token: seg.token})
		}

		cur = child
	}

	if pending != 0 || !cur.hasValue {
		return nil, false
	}

	return cur, true
}
