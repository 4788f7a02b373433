// Copyright 2022 Arvid Ryndal <arvid@ryndal.dev>
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

package listener

import (
	"crypto/tls"
	"net"

	"github.com/ryndalv/skein/internal/config"
	"github.com/ryndalv/skein/internal/skein"
	"github.com/ryndalv/skein/internal/watcher"
	"github.com/ryndalv/skein/internal/x/errorchain"
	"github.com/ryndalv/skein/internal/x/tlsx"
)

func New(network, address string, tlsConf *config.TLS, cw watcher.Watcher) (net.Listener, error) {
	ln, err := net.Listen(network, address)
	if err != nil {
		return nil, errorchain.NewWithMessage(skein.ErrInternal, "failed creating listener").
			CausedBy(err)
	}

	if tlsConf != nil {
		return newTLSListener(ln, tlsConf, cw)
	}

	return ln, nil
}

func newTLSListener(ln net.Listener, tlsConf *config.TLS, cw watcher.Watcher) (net.Listener, error) {
	cfg, err := tlsx.ToTLSConfig(tlsConf,
		tlsx.WithServerAuthentication(true),
		tlsx.WithSecretsWatcher(cw),
	)
	if err != nil {
		return nil, err
	}

	return tls.NewListener(ln, cfg), nil
}
