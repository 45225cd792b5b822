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
	"log/slog"
	"math"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/LeonAquitaine/as-stagefx-sub005/pkg/catalog"
	"github.com/LeonAquitaine/as-stagefx-sub005/pkg/core/config"
	"github.com/LeonAquitaine/as-stagefx-sub005/pkg/core/logging"
	"github.com/LeonAquitaine/as-stagefx-sub005/pkg/docs"
	"github.com/LeonAquitaine/as-stagefx-sub005/pkg/templating"
)

// summaryDurationUnit is the rounding applied to durations in the
// printed summary.
const summaryDurationUnit = time.Millisecond

var (
	renderParallelism int
	renderStrict      bool
)

// renderCmd represents the render command (the main pipeline).
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render all configured documents from the shader catalog",
	Long: `Render all configured documents from the shader catalog.

The catalog is loaded and the render context built exactly once; every
document then renders against that immutable context. Documents render
in parallel up to the configured limit, and one failed document never
aborts the others. The command ends with a per-document summary.

Example usage:
  # Render with the default configuration file
  stagefx-docs render

  # Render with a specific configuration
  stagefx-docs render --config docs/docs.yaml

  # Fail the run when any document fails
  stagefx-docs render --strict`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().IntVar(&renderParallelism, "parallelism", 0,
		"Number of documents rendered concurrently (0 = use configuration)")
	renderCmd.Flags().BoolVar(&renderStrict, "strict", false,
		"Exit non-zero when any document fails (overrides configuration)")
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfigFile(resolveConfigPath())
	if err != nil {
		return err
	}
	if err := config.ValidateStructure(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Configuration priority: CLI flags > Environment variables > Defaults
	if renderParallelism > 0 {
		cfg.Render.Parallelism = renderParallelism
	}
	if renderStrict {
		cfg.Render.Strict = true
	}

	logger := setupLogger(cfg)

	// Log detected resource limits for observability
	gomaxprocs := runtime.GOMAXPROCS(0)
	var gomemlimit string
	if limit := debug.SetMemoryLimit(-1); limit != math.MaxInt64 {
		gomemlimit = fmt.Sprintf("%d bytes (%.2f MiB)", limit, float64(limit)/(1024*1024))
	} else {
		gomemlimit = "unlimited"
	}

	logger.Info("AS-StageFX documentation generator starting",
		"catalog", cfg.Catalog.Path,
		"documents", len(cfg.Documents),
		"parallelism", cfg.Render.Parallelism,
		"strict", cfg.Render.Strict,
		"gomaxprocs", gomaxprocs,
		"gomemlimit", gomemlimit)

	// Malformed catalog input is fatal for the whole run: no partial
	// context is ever rendered from.
	entries, err := catalog.LoadFile(cfg.Catalog.Path)
	if err != nil {
		return err
	}

	renderContext := catalog.BuildContext(entries, catalog.DefaultLicence{
		Text: cfg.DefaultLicence.Text,
		Code: cfg.DefaultLicence.Code,
	})
	logger.Info("Catalog context built",
		"entries", renderContext.Statistics.Total,
		"adapted", len(renderContext.Adapted),
		"original", len(renderContext.Original))

	registry := prometheus.NewRegistry()
	runMetrics := docs.NewMetrics(registry)
	runMetrics.CatalogEntries.Set(float64(renderContext.Statistics.Total))

	documents, err := buildDocuments(cfg.Documents)
	if err != nil {
		return err
	}

	// Set up signal handling so an interrupted batch still summarizes
	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	renderer := docs.New(logger,
		docs.WithMetrics(runMetrics),
		docs.WithParallelism(cfg.Render.Parallelism))
	summary := renderer.Render(ctx, templating.FromAny(renderContext.Data()), documents)

	printSummary(summary)

	if !summary.OK() && cfg.Render.Strict {
		return fmt.Errorf("%d of %d documents failed", len(summary.Failed()), len(summary.Results))
	}
	return nil
}

// setupLogger builds the run logger. The VERBOSE environment variable
// (0 = WARNING, 1 = INFO, 2 = DEBUG) overrides the configured level.
func setupLogger(cfg *config.Config) *slog.Logger {
	verbose := cfg.Logging.Verbose
	switch os.Getenv("VERBOSE") {
	case "0":
		verbose = 0
	case "1":
		verbose = 1
	case "2":
		verbose = 2
	}

	logger := logging.NewLoggerAtLevel(logging.VerboseLevel(verbose))
	slog.SetDefault(logger)
	return logger
}

// buildDocuments converts document configuration into render jobs,
// instantiating any configured post-processors.
func buildDocuments(configs []config.DocumentConfig) ([]docs.Document, error) {
	documents := make([]docs.Document, 0, len(configs))
	for _, dc := range configs {
		var processors []templating.PostProcessor
		for _, pc := range dc.PostProcessors {
			p, err := templating.NewPostProcessor(templating.PostProcessorConfig{
				Type:   templating.PostProcessorType(pc.Type),
				Params: pc.Params,
			})
			if err != nil {
				return nil, fmt.Errorf("document %q: %w", dc.Name, err)
			}
			processors = append(processors, p)
		}
		documents = append(documents, docs.Document{
			Name:           dc.Name,
			TemplatePath:   dc.Template,
			OutputPath:     dc.Output,
			PostProcessors: processors,
		})
	}
	return documents, nil
}

// printSummary writes the per-document outcome to stdout.
func printSummary(summary *docs.Summary) {
	fmt.Printf("\nRender run %s (%s)\n", summary.RunID, summary.Duration.Round(summaryDurationUnit))
	for _, r := range summary.Results {
		if r.Err != nil {
			fmt.Printf("  FAILED  %-24s %v\n", r.Name, r.Err)
			continue
		}
		fmt.Printf("  ok      %-24s %s (%d bytes)\n", r.Name, r.OutputPath, r.Bytes)
	}
	fmt.Printf("%d succeeded, %d failed\n", len(summary.Succeeded()), len(summary.Failed()))
}
