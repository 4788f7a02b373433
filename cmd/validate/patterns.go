// Copyright 2024 Arvid Ryndal <arvid@ryndal.dev>
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

package validate

import (
	"bytes"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ryndalv/skein/internal/patterns"
	"github.com/ryndalv/skein/internal/patterns/config"
	"github.com/ryndalv/skein/internal/x/errorchain"
)

// NewValidatePatternsCommand represents the "validate patterns" command.
func NewValidatePatternsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "patterns [path to pattern set]",
		Short:   "Validates a pattern set definition",
		Args:    cobra.ExactArgs(1),
		Example: "skein validate patterns patterns.yaml",
		Run: func(cmd *cobra.Command, args []string) {
			if err := validatePatternSet(args[0]); err != nil {
				cmd.PrintErrf("%v\n", err)

				os.Exit(1)
			}

			cmd.Println("Pattern set is valid")
		},
	}
}

func validatePatternSet(file string) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return err
	}

	contentType := "application/yaml"
	if strings.HasSuffix(file, ".json") {
		contentType = "application/json"
	}

	set, err := config.ParsePatternSet(contentType, bytes.NewBuffer(data))
	if err != nil {
		return err
	}

	if set.Version != config.CurrentVersion {
		return errorchain.NewWithMessage(patterns.ErrUnsupportedPatternSetVersion, set.Version)
	}

	// same pipeline as used by the providers, just without applying
	// the outcome to the repository
	factory := patterns.NewPatternFactory(zerolog.Nop())

	for _, pc := range set.Patterns {
		if _, err := factory.CreatePattern("file_system:"+file, pc); err != nil {
			return err
		}
	}

	return nil
}
