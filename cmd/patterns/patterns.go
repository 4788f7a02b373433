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

package patterns

import (
	"io"
	"net/http"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ryndalv/skein/internal/x/stringx"
)

// patternInfo mirrors the wire representation of a single pattern as
// returned by the patterns API.
type patternInfo struct {
	ID         string `json:"id"`
	SrcID      string `json:"src_id"`
	Expression string `json:"expression"`
	Value      any    `json:"value,omitempty"`
}

func fetch(cmd *cobra.Command, url string) []byte {
	resp, err := http.DefaultClient.Get(url)
	if err != nil {
		cmd.PrintErrf("Failed to send request: %v", err)
		os.Exit(-1)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		cmd.PrintErrf("Unexpected HTTP status code : %s", resp.Status)
		os.Exit(-1)
	}

	rawResp, err := io.ReadAll(resp.Body)
	if err != nil {
		cmd.PrintErrf("Failed to read response: %v", err)
		os.Exit(-1)
	}

	return rawResp
}

func printYaml(cmd *cobra.Command, rawResp []byte) {
	var structuredResponse map[string]any
	if err := json.Unmarshal(rawResp, &structuredResponse); err != nil {
		cmd.PrintErrf("Failed to unmarshal response: %v", err)
		os.Exit(-1)
	}

	rawYaml, err := yaml.Marshal(structuredResponse)
	if err != nil {
		cmd.PrintErrf("Failed to convert response to yaml: %v", err)
		os.Exit(-1)
	}

	cmd.Println(stringx.ToString(rawYaml))
}
