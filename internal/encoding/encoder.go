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

package encoding

import (
	"io"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/ryndalv/skein/internal/skein"
	"github.com/ryndalv/skein/internal/x/errorchain"
)

type Encoder struct {
	encoderOpts
}

func NewEncoder(opts ...EncoderOption) *Encoder {
	encoder := &Encoder{}

	for _, opt := range opts {
		opt(&encoder.encoderOpts)
	}

	return encoder
}

func (e *Encoder) Encode(obj any, out io.Writer) error {
	var err error

	switch e.contentType {
	case "application/json":
		err = json.NewEncoder(out).Encode(obj)
	case "application/yaml":
		err = yaml.NewEncoder(out).Encode(obj)
	default:
		return errorchain.NewWithMessagef(skein.ErrInternal,
			"unsupported content type: %s", e.contentType)
	}

	if err != nil {
		return errorchain.NewWithMessage(skein.ErrInternal,
			"marshalling object failed").CausedBy(err)
	}

	return nil
}
