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

package keystore

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryndalv/skein/internal/x/testsupport"
)

func TestEntryToTLSCertificate(t *testing.T) {
	t.Parallel()

	privKey, err := ecdsa.GenerateKey(elliptic.P384(), rand.Reader)
	require.NoError(t, err)

	cert, err := testsupport.NewCertificateBuilder(
		testsupport.WithValidity(time.Now(), 10*time.Hour),
		testsupport.WithSerialNumber(big.NewInt(1)),
		testsupport.WithSubject(pkix.Name{
			CommonName:   "test cert",
			Organization: []string{"Test"},
			Country:      []string{"EU"},
		}),
		testsupport.WithSubjectPubKey(&privKey.PublicKey, x509.ECDSAWithSHA384),
		testsupport.WithSelfSigned(),
		testsupport.WithSignaturePrivKey(privKey)).
		Build()
	require.NoError(t, err)

	for _, tc := range []struct {
		uc     string
		entry  *Entry
		assert func(t *testing.T, tlsCert tls.Certificate, err error)
	}{
		{
			uc:    "entry without cert chain",
			entry: &Entry{KeyID: "foo", Alg: AlgECDSA, PrivateKey: privKey, KeySize: 384},
			assert: func(t *testing.T, _ tls.Certificate, err error) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, ErrNoCertificatePresent)
			},
		},
		{
			uc: "entry with cert chain",
			entry: &Entry{
				KeyID:      "bar",
				Alg:        AlgECDSA,
				PrivateKey: privKey,
				KeySize:    384,
				CertChain:  []*x509.Certificate{cert},
			},
			assert: func(t *testing.T, tlsCert tls.Certificate, err error) {
				t.Helper()

				require.NoError(t, err)
				assert.Equal(t, privKey, tlsCert.PrivateKey)
				assert.Equal(t, cert, tlsCert.Leaf)
				require.Len(t, tlsCert.Certificate, 1)
				assert.Equal(t, cert.Raw, tlsCert.Certificate[0])
			},
		},
	} {
		t.Run("case="+tc.uc, func(t *testing.T) {
			// WHEN
			tlsCert, err := tc.entry.TLSCertificate()

			// THEN
			tc.assert(t, tlsCert, err)
		})
	}
}
