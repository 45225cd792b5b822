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

// Package main provides the CLI entrypoint for the AS-StageFX
// documentation generator.
//
// The generator accepts configuration via CLI flags, environment
// variables, or defaults:
//
//   - Config file: --config flag, STAGEFX_DOCS_CONFIG env var, or "docs.yaml" default
//   - Log level: VERBOSE env var (0 = WARNING, 1 = INFO, 2 = DEBUG),
//     overriding the configured level
//
// The render command loads the shader catalog, builds the render
// context once, and renders every configured document; the validate
// command checks the catalog and template syntax without writing
// anything.
package main

import (
	"fmt"
	"os"

	_ "github.com/KimMachineGun/automemlimit"

	"github.com/spf13/cobra"
)

// DefaultConfigPath is the default configuration file location.
const DefaultConfigPath = "docs.yaml"

var configPath string

// rootCmd is the base command for the documentation generator.
var rootCmd = &cobra.Command{
	Use:   "stagefx-docs",
	Short: "Render AS-StageFX catalog documentation from templates",
	Long: `stagefx-docs renders the AS-StageFX shader catalog into human-readable
documents (galleries, README, credits) using the catalog-driven template
directives {{ path }}, {{#each}}, and {{#if}}.

Configuration is loaded from:
1. Command-line flags (highest priority)
2. Environment variables
3. Default values (lowest priority)`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"Path to the configuration file (env: STAGEFX_DOCS_CONFIG)")
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(validateCmd)
}

// resolveConfigPath applies the flag > environment > default precedence.
func resolveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	if env := os.Getenv("STAGEFX_DOCS_CONFIG"); env != "" {
		return env
	}
	return DefaultConfigPath
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
