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

// NewGetCommand represents the get command.
func NewGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Short:   "Gets a single pattern loaded by a skein deployment",
		Example: "skein patterns --endpoint=https://skein.local get pattern-1",
		Args:    cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			endpointURL, _ := cmd.Flags().GetString("endpoint")
			outputFormat, _ := cmd.Flags().GetString("output")

			rawResp := fetch(cmd, fmt.Sprintf("%s%s/%s", endpointURL, api.EndpointPatterns, args[0]))

			switch outputFormat {
			case "json":
				cmd.Println(stringx.ToString(rawResp))
			case "yaml":
				printYaml(cmd, rawResp)
			default:
				var info patternInfo

				if err := json.Unmarshal(rawResp, &info); err != nil {
					cmd.PrintErrf("Failed to unmarshal response: %v", err)
					os.Exit(-1)
				}

				cmd.Printf("id: %s\n", info.ID)
				cmd.Printf("src_id: %s\n", info.SrcID)
				cmd.Printf("expression: %s\n", info.Expression)

				if info.Value != nil {
					cmd.Printf("value: %v\n", info.Value)
				}
			}
		},
	}
}
