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
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/ryndalv/skein/internal/handler/api"
	"github.com/ryndalv/skein/internal/x/stringx"
)

// NewListCommand represents the list command.
func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   "Lists the patterns loaded by a skein deployment",
		Example: "skein patterns --endpoint=https://skein.local list",
		Run: func(cmd *cobra.Command, _ []string) {
			endpointURL, _ := cmd.Flags().GetString("endpoint")
			outputFormat, _ := cmd.Flags().GetString("output")

			rawResp := fetch(cmd, fmt.Sprintf("%s%s", endpointURL, api.EndpointPatterns))

			switch outputFormat {
			case "json":
				cmd.Println(stringx.ToString(rawResp))
			case "yaml":
				printYaml(cmd, rawResp)
			default:
				var listResponse struct {
					Revision string        `json:"revision"`
					Patterns []patternInfo `json:"patterns"`
				}

				if err := json.Unmarshal(rawResp, &listResponse); err != nil {
					cmd.PrintErrf("Failed to unmarshal response: %v", err)
					os.Exit(-1)
				}

				cmd.Printf("revision: %s\n", listResponse.Revision)

				for _, info := range listResponse.Patterns {
					cmd.Printf("%s\t%s\n", info.ID, info.Expression)
				}
			}
		},
	}
}
