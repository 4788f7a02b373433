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

package serve

import (
	"github.com/spf13/cobra"

	"github.com/ryndalv/skein/internal/handler/api"
)

// NewCommand represents the "serve" command, starting the pattern matching
// service together with the management and metrics services.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "serve",
		Short:   "Starts skein's pattern matching service",
		Example: "skein serve -c config.yaml",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := createApp(cmd, api.Module)
			if err != nil {
				return err
			}

			app.Run()

			return nil
		},
	}
}
