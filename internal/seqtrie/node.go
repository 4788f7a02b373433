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

import "reflect"

type (
	// node is the unit of the trie. Edges are of three kinds: literal edges
	// keyed by token, at most one wildcard edge, and an optional terminal
	// value slot. A node reached through a wildcard edge carries the length
	// of the wildcard run that edge collapses; run is zero otherwise.
	node[K comparable, V any] struct {
		children map[K]*node[K, V]
		wildcard *node[K, V]
		run      int

		value    V
		hasValue bool
	}

	// crumb records one traversed edge, enough to walk back up and undo it.
	crumb[K comparable, V any] struct {
		parent   *node[K, V]
		token    K
		wildcard bool
	}
)

func (n *node[K, V]) empty() bool {
	return !n.hasValue && n.wildcard == nil && len(n.children) == 0
}

func (n *node[K, V]) child(token K) *node[K, V] {
	return n.children[token]
}

func (n *node[K, V]) addChild(token K, child *node[K, V]) {
	if n.children == nil {
		n.children = make(map[K]*node[K, V])
	}

	n.children[token] = child
}

// settleRun returns the node representing exactly want pending wildcard
// tokens below n, extending the chain or splitting it at the demanded
// boundary. The walk feeding it descends through every chain node fully
// covered by the request, so n's wildcard child, if present, is strictly
// longer than want.
func (n *node[K, V]) settleRun(want int) *node[K, V] {
	if want == 0 {
		return n
	}

	if want < 0 {
		panic("seqtrie: wildcard run accounting underflow")
	}

	child := n.wildcard
	if child == nil {
		child = &node[K, V]{run: want}
		n.wildcard = child

		return child
	}

	// Split: the upper part takes the demanded length, the former child
	// keeps the remainder together with all its edges and its terminal slot.
	upper := &node[K, V]{run: want, wildcard: child}
	child.run -= want
	n.wildcard = upper

	return upper
}

// mergeRunInto folds n, a run node holding nothing but its wildcard edge,
// into that child, undoing a split no live entry demands anymore. parent is
// the node whose wildcard edge points at n.
func (n *node[K, V]) mergeRunInto(parent *node[K, V]) {
	child := n.wildcard
	child.run += n.run
	parent.wildcard = child
}

func (n *node[K, V]) equal(other *node[K, V]) bool {
	if n.run != other.run || n.hasValue != other.hasValue || len(n.children) != len(other.children) {
		return false
	}

	if n.hasValue && !reflect.DeepEqual(n.value, other.value) {
		return false
	}

	if (n.wildcard == nil) != (other.wildcard == nil) {
		return false
	}

	if n.wildcard != nil && !n.wildcard.equal(other.wildcard) {
		return false
	}

	for token, child := range n.children {
		otherChild, ok := other.children[token]
		if !ok || !child.equal(otherChild) {
			return false
		}
	}

	return true
}

func (n *node[K, V]) clone() *node[K, V] {
	out := &node[K, V]{run: n.run, value: n.value, hasValue: n.hasValue}

	if n.wildcard != nil {
		out.wildcard = n.wildcard.clone()
	}

	if len(n.children) != 0 {
		out.children = make(map[K]*node[K, V], len(n.children))

		for token, child := range n.children {
			out.children[token] = child.clone()
		}
	}

	return out
}
