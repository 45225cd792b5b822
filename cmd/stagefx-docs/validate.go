// Copyright 2025 Leon Aquitaine
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/LeonAquitaine/as-stagefx-sub005/pkg/catalog"
	"github.com/LeonAquitaine/as-stagefx-sub005/pkg/core/config"
	"github.com/LeonAquitaine/as-stagefx-sub005/pkg/templating"
)

// validateCmd represents the validate command.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the catalog and all configured templates without rendering",
	Long: `Validate the configuration, the shader catalog, and the syntax of every
configured template. Nothing is written; parse errors are reported with
their location and the offending template line.

Example usage:
  # Validate using the default configuration file
  stagefx-docs validate

  # Validate a specific configuration
  stagefx-docs validate --config docs/docs.yaml`,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfigFile(resolveConfigPath())
	if err != nil {
		return err
	}
	if err := config.ValidateStructure(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	entries, err := catalog.LoadFile(cfg.Catalog.Path)
	if err != nil {
		return err
	}
	fmt.Printf("catalog %s: %d entries ok\n", cfg.Catalog.Path, len(entries))

	failures := 0
	for _, doc := range cfg.Documents {
		raw, err := os.ReadFile(doc.Template)
		if err != nil {
			failures++
			fmt.Printf("template %s: %v\n", doc.Template, err)
			continue
		}

		if _, err := templating.Parse(string(raw)); err != nil {
			failures++
			fmt.Println(templating.FormatTemplateError(err, doc.Template, string(raw)))
			continue
		}
		fmt.Printf("template %s: ok\n", doc.Template)
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d templates failed validation", failures, len(cfg.Documents))
	}
	return nil
}
