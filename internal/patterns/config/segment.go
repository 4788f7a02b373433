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

import "fmt"

// Segment is one element of a declared pattern sequence. Exactly one of
// Token and Wildcard must be set.
type Segment struct {
	Token    *string `json:"token,omitempty"    yaml:"token,omitempty"    validate:"required_without=Wildcard,excluded_with=Wildcard"` //nolint:lll,tagalign
	Wildcard *int    `json:"wildcard,omitempty" yaml:"wildcard,omitempty" validate:"required_without=Token,excluded_with=Token"`       //nolint:lll,tagalign
}

func (s Segment) IsWildcard() bool { return s.Wildcard != nil }

func (s Segment) String() string {
	switch {
	case s.Wildcard != nil:
		return fmt.Sprintf("*%d", *s.Wildcard)
	case s.Token != nil:
		return *s.Token
	default:
		return "<invalid>"
	}
}
