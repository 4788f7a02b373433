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

package trustedproxy

import (
	"net"
	"net/http"
	"slices"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yl2chen/cidranger"

	"github.com/ryndalv/skein/internal/config"
	"github.com/ryndalv/skein/internal/x"
	"github.com/ryndalv/skein/internal/x/httpx"
)

var untrustedHeader = []string{ //nolint:gochecknoglobals
	"Forwarded",
	"X-Forwarded-For",
	"X-Forwarded-Proto",
	"X-Forwarded-Host",
	"X-Forwarded-Uri",
	"X-Forwarded-Path",
	"X-Forwarded-Method",
}

func New(logger zerolog.Logger, proxies ...string) func(http.Handler) http.Handler {
	ranger := cidranger.NewPCTrieRanger()

	for _, ipAddr := range proxies {
		if !strings.Contains(ipAddr, "/") {
			// single addresses are registered as host networks
			ipAddr += x.IfThenElse(strings.Contains(ipAddr, ":"), "/128", "/32")
		}

		_, ipNet, err := net.ParseCIDR(ipAddr)
		if err != nil {
			logger.Warn().Err(err).
				Msgf("Trusted proxies entry %q could not be parsed and will be ignored", ipAddr)

			continue
		}

		if slices.Contains(config.InsecureNetworks, ipNet.String()) {
			logger.Warn().Msgf("Configured trusted proxies contains insecure networks: %s", ipAddr)
		}

		if err = ranger.Insert(cidranger.NewBasicRangerEntry(*ipNet)); err != nil {
			logger.Warn().Err(err).
				Msgf("Trusted proxies entry %q could not be registered and will be ignored", ipAddr)
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
			trusted, err := ranger.Contains(net.ParseIP(httpx.IPFromHostPort(req.RemoteAddr)))
			if err != nil || !trusted {
				for _, name := range untrustedHeader {
					req.Header.Del(name)
				}
			}

			next.ServeHTTP(rw, req)
		})
	}
}
