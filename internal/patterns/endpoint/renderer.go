// Copyright 2023 Arvid Ryndal <arvid@ryndal.dev>
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

package endpoint

type Renderer interface {
	Render(value string) (string, error)
}

type RenderFunc func(value string) (string, error)

func (f RenderFunc) Render(value string) (string, error) { return f(value) }

type noopRenderer struct{}

func (noopRenderer) Render(value string) (string, error) { return value, nil }
