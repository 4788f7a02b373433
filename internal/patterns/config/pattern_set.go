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

package config

import (
	"time"
)

// CurrentVersion is the pattern set document version this build understands.
const CurrentVersion = "1alpha1"

// MetaData carries provenance of a loaded pattern set. It is managed by the
// loading provider and never part of the declared document.
type MetaData struct {
	Hash    []byte    `json:"-" yaml:"-"`
	Source  string    `json:"-" yaml:"-"`
	ModTime time.Time `json:"-" yaml:"-"`
}

type PatternSet struct {
	MetaData

	Version  string    `json:"version"  yaml:"version"  validate:"required"`
	Name     string    `json:"name"     yaml:"name"     validate:"required"`
	Patterns []Pattern `json:"patterns" yaml:"patterns" validate:"required,gt=0,dive"`
}
