// Copyright 2022-2025 Arvid Ryndal <arvid@ryndal.dev>
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

package httpcache

import (
	"bufio"
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httputil"
	"strings"
	"time"

	"github.com/pquerna/cachecontrol"

	"github.com/ryndalv/skein/internal/cache"
)

type RoundTripper struct {
	Transport       http.RoundTripper
	DefaultCacheTTL time.Duration
}

func (rt *RoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := rt.cachedResponse(req)
	if err == nil {
		return resp, nil
	}

	resp, err = rt.Transport.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	rt.cacheResponse(req, resp)

	return resp, nil
}

func (rt *RoundTripper) cachedResponse(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	respDump, err := cache.Ctx(ctx).Get(ctx, cacheKey(req))
	if err != nil {
		return nil, err
	}

	return http.ReadResponse(bufio.NewReader(bytes.NewReader(respDump)), req)
}

func (rt *RoundTripper) cacheResponse(req *http.Request, resp *http.Response) {
	ttl := rt.cacheTTL(req, resp)
	if ttl <= 0 {
		return
	}

	respDump, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return
	}

	ctx := req.Context()

	// nolint: errcheck
	cache.Ctx(ctx).Set(ctx, cacheKey(req), respDump, ttl)
}

func (rt *RoundTripper) cacheTTL(req *http.Request, resp *http.Response) time.Duration {
	reasons, expires, err := cachecontrol.CachableResponse(req, resp, cachecontrol.Options{PrivateCache: true})
	if err != nil || len(reasons) != 0 {
		return 0
	}

	if expires.IsZero() {
		return rt.DefaultCacheTTL
	}

	return time.Until(expires)
}

func cacheKey(req *http.Request) string {
	hash := sha256.New()

	hash.Write([]byte("RFC 7234"))
	hash.Write([]byte(req.URL.String()))
	hash.Write([]byte(req.Method))

	value := req.Header.Get("Authorization")
	if len(value) != 0 {
		hash.Write([]byte(strings.TrimSpace(value)))
	}

	return hex.EncodeToString(hash.Sum(nil))
}
