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

package metrics

import (
	"crypto/x509"

	"go.opentelemetry.io/contrib/instrumentation/host"
	"go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.uber.org/fx"

	"github.com/ryndalv/skein/internal/config"
	"github.com/ryndalv/skein/internal/keystore"
	"github.com/ryndalv/skein/internal/otel/metrics/certificate"
)

var Module = fx.Options( // nolint: gochecknoglobals
	fx.Invoke(runtime.Start),
	fx.Invoke(host.Start),
	fx.Invoke(monitorCertificateExpiry),
)

func monitorCertificateExpiry(conf *config.Configuration) error {
	obs := certificate.NewObserver()

	for name, tlsConf := range map[string]*config.TLS{
		"api":        conf.Serve.TLS,
		"management": conf.Management.TLS,
	} {
		if tlsConf == nil {
			continue
		}

		// failures surface on listener creation, not here
		ks, err := keystore.NewKeyStoreFromPEMFile(tlsConf.KeyStore.Path, tlsConf.KeyStore.Password)
		if err != nil {
			continue
		}

		obs.Add(&keyStoreSupplier{name: name, ks: ks, keyID: tlsConf.KeyID})
	}

	return obs.Start()
}

type keyStoreSupplier struct {
	name  string
	ks    keystore.KeyStore
	keyID string
}

func (s *keyStoreSupplier) Name() string { return s.name }

func (s *keyStoreSupplier) Certificates() []*x509.Certificate {
	if len(s.keyID) != 0 {
		entry, err := s.ks.GetKey(s.keyID)
		if err != nil {
			return nil
		}

		return entry.CertChain
	}

	entries := s.ks.Entries()
	if len(entries) == 0 {
		return nil
	}

	return entries[0].CertChain
}
