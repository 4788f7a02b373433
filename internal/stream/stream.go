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

// Source is a single-pass, pull-based sequence of values. Next returns the
// next value, or ok == false once the sequence ended; it may block until the
// upstream produces a value or ctx is done. Stop tells the upstream that no
// further values will be pulled; it is a best-effort signal, safe to call
// more than once and after natural exhaustion.
type Source[T any] interface {
	Next(ctx context.Context) (value T, ok bool, err error)
	Stop()
}

type sliceSource[T any] struct {
	items   []T
	pos     int
	stopped bool
}

// FromSlice returns a Source yielding the given items. It never suspends
// and never fails.
func FromSlice[T any](items []T) Source[T] {
	return &sliceSource[T]{items: items}
}

func (s *sliceSource[T]) Next(_ context.Context) (T, bool, error) {
	if s.stopped || s.pos == len(s.items) {
		var zero T

		return zero, false, nil
	}

	value := s.items[s.pos]
	s.pos++

	return value, true, nil
}

func (s *sliceSource[T]) Stop() { s.stopped = true }

type funcSource[T any] struct {
	next    func(ctx context.Context) (T, bool, error)
	stop    func()
	stopped bool
}

// FromFunc builds a Source from a pull function and an optional stop hook.
func FromFunc[T any](next func(ctx context.Context) (T, bool, error), stop func()) Source[T] {
	return &funcSource[T]{next: next, stop: stop}
}

func (s *funcSource[T]) Next(ctx context.Context) (T, bool, error) {
	if s.stopped {
		var zero T

		return zero, false, nil
	}

	return s.next(ctx)
}

func (s *funcSource[T]) Stop() {
	if s.stopped {
		return
	}

	s.stopped = true

	if s.stop != nil {
		s.stop()
	}
}

type chanSource[T any] struct {
	ch      <-chan T
	stop    func()
	stopped bool
}

// FromChan builds a Source reading from ch until it is closed. The optional
// stop hook tells the producer to quit feeding the channel; closing the
// channel remains the producer's job.
func FromChan[T any](ch <-chan T, stop func()) Source[T] {
	return &chanSource[T]{ch: ch, stop: stop}
}

func (s *chanSource[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T

	if s.stopped {
		return zero, false, nil
	}

	select {
	case value, ok := <-s.ch:
		if !ok {
			return zero, false, nil
		}

		return value, true, nil
	case <-ctx.Done():
		return zero, false, ctx.Err()
	}
}

func (s *chanSource[T]) Stop() {
	if s.stopped {
		return
	}

	s.stopped = true

	if s.stop != nil {
		s.stop()
	}
}

// Collect pulls src dry and returns everything it produced.
func Collect[T any](ctx context.Context, src Source[T]) ([]T, error) {
	var out []T

	for {
		value, ok, err := src.Next(ctx)
		if err != nil {
			return nil, err
		}

		if !ok {
			return out, nil
		}

		out = append(out, value)
	}
}
