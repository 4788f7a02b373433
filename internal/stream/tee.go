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

package stream

import "context"

type (
	// cell is one link of the shared append-only log.
	cell[T any] struct {
		value T
		next  *cell[T]
	}

	// buffer is the state shared by all cursors over one source: the log
	// frontier, the upstream end/error condition and the number of cursors
	// still reading.
	buffer[T any] struct {
		src     Source[T]
		tail    *cell[T]
		done    bool
		err     error
		readers int
		stopped bool
	}

	// Cursor is one independent reader over a shared single-pass source.
	// Cursors behind the frontier replay the log; the cursor reaching the
	// frontier performs the one upstream pull and appends the result for
	// everybody. Cursor is itself a Source and not safe for concurrent use.
	Cursor[T any] struct {
		buf     *buffer[T]
		pos     *cell[T]
		stopped bool
	}
)

// NewCursor wraps src into a cursor. Further cursors over the same source
// come from Fork.
func NewCursor[T any](src Source[T]) *Cursor[T] {
	sentinel := &cell[T]{}

	return &Cursor[T]{
		buf: &buffer[T]{src: src, tail: sentinel, readers: 1},
		pos: sentinel,
	}
}

// Fork returns a new cursor positioned where c currently is. Both cursors
// advance independently; tokens already produced are replayed from the
// shared log, never pulled again.
func (c *Cursor[T]) Fork() *Cursor[T] {
	c.buf.readers++

	return &Cursor[T]{buf: c.buf, pos: c.pos}
}

// Next returns the next value for this cursor. Backlog from the shared log
// is drained first; at the frontier the upstream is pulled exactly once and
// its end or failure is observed by every cursor.
func (c *Cursor[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T

	if c.stopped {
		return zero, false, nil
	}

	if c.pos.next == nil {
		if c.buf.done {
			return zero, false, c.buf.err
		}

		value, ok, err := c.buf.src.Next(ctx)
		if err != nil {
			c.buf.done = true
			c.buf.err = err

			return zero, false, err
		}

		if !ok {
			c.buf.done = true

			return zero, false, nil
		}

		produced := &cell[T]{value: value}
		c.buf.tail.next = produced
		c.buf.tail = produced
	}

	c.pos = c.pos.next

	return c.pos.value, true, nil
}

// Stop marks this cursor as permanently done. Once all cursors over the
// source stopped without having seen its natural end, the upstream Stop is
// invoked, exactly once.
func (c *Cursor[T]) Stop() {
	if c.stopped {
		return
	}

	c.stopped = true
	c.buf.readers--

	if c.buf.readers == 0 && !c.buf.done && !c.buf.stopped {
		c.buf.stopped = true
		c.buf.src.Stop()
	}
}
