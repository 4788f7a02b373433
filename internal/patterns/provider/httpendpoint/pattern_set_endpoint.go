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

package httpendpoint

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/elnormous/contenttype"

	"github.com/ryndalv/skein/internal/patterns/config"
	"github.com/ryndalv/skein/internal/patterns/endpoint"
	"github.com/ryndalv/skein/internal/skein"
	"github.com/ryndalv/skein/internal/x/errorchain"
)

type patternSetEndpoint struct {
	endpoint.Endpoint `mapstructure:",squash"`
}

func (e *patternSetEndpoint) ID() string { return e.URL }

func (e *patternSetEndpoint) FetchPatternSet(ctx context.Context) (*config.PatternSet, error) {
	req, err := e.CreateRequest(ctx, nil, nil)
	if err != nil {
		return nil, errorchain.
			NewWithMessage(skein.ErrInternal, "failed creating request").
			CausedBy(err)
	}

	client := e.CreateClient(req.URL.Hostname())

	resp, err := client.Do(req)
	if err != nil {
		var clientErr *url.Error
		if errors.As(err, &clientErr) && clientErr.Timeout() {
			return nil, errorchain.
				NewWithMessage(skein.ErrCommunicationTimeout, "request to pattern set endpoint timed out").
				CausedBy(err)
		}

		return nil, errorchain.
			NewWithMessage(skein.ErrCommunication, "request to pattern set endpoint failed").
			CausedBy(err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errorchain.NewWithMessagef(skein.ErrCommunication,
			"unexpected response code: %v", resp.StatusCode)
	}

	patternSet, err := config.ParsePatternSet(contentTypeFor(resp), resp.Body)
	if err != nil {
		if errors.Is(err, config.ErrEmptyPatternSet) {
			return nil, err
		}

		return nil, errorchain.NewWithMessage(skein.ErrInternal, "failed to decode received pattern set").
			CausedBy(err)
	}

	patternSet.Source = "http_endpoint:" + e.ID()
	patternSet.ModTime = modTimeFor(resp)

	return patternSet, nil
}

func (e *patternSetEndpoint) init() error {
	if err := e.Validate(); err != nil {
		return errorchain.NewWithMessage(skein.ErrConfiguration, "validation of a pattern set endpoint failed").
			CausedBy(err)
	}

	if len(e.Method) != 0 && e.Method != http.MethodGet {
		return errorchain.NewWithMessage(skein.ErrConfiguration,
			"only GET is supported for the endpoint configuration of the http_endpoint pattern provider")
	}

	e.Method = http.MethodGet

	return nil
}

// contentTypeFor normalizes the Content-Type header of the response to its
// bare type/subtype form, dropping any parameters, like charset.
func contentTypeFor(resp *http.Response) string {
	mt := contenttype.NewMediaType(resp.Header.Get("Content-Type"))
	if len(mt.Type) == 0 {
		return resp.Header.Get("Content-Type")
	}

	return mt.Type + "/" + mt.Subtype
}

func modTimeFor(resp *http.Response) time.Time {
	if modTime, err := http.ParseTime(resp.Header.Get("Last-Modified")); err == nil {
		return modTime
	}

	return time.Now()
}
