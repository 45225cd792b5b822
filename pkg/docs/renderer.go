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

package docs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/LeonAquitaine/as-stagefx-sub005/pkg/templating"
)

// Renderer renders a batch of documents against one shared root scope.
// The scope is immutable, each document owns its AST, and results land
// in per-document slots, so documents render concurrently without
// coordination beyond the work limit.
type Renderer struct {
	logger      *slog.Logger
	metrics     *Metrics
	parallelism int
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithMetrics attaches render-run metric instruments.
func WithMetrics(m *Metrics) Option {
	return func(r *Renderer) {
		r.metrics = m
	}
}

// WithParallelism bounds how many documents render concurrently.
// Values below 1 are treated as 1.
func WithParallelism(n int) Option {
	return func(r *Renderer) {
		if n < 1 {
			n = 1
		}
		r.parallelism = n
	}
}

// New creates a Renderer. A nil logger falls back to slog.Default().
func New(logger *slog.Logger, opts ...Option) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}

	r := &Renderer{
		logger:      logger,
		parallelism: 1,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render renders every document against the shared root scope and
// returns the run summary. A document that fails to parse, render, or
// write fails alone; the rest of the batch proceeds. Render itself only
// returns early when the context is canceled, and even then the summary
// reports every document's outcome.
func (r *Renderer) Render(ctx context.Context, root templating.Value, documents []Document) *Summary {
	runID := uuid.NewString()
	start := time.Now()

	r.logger.Info("Starting render run",
		"run_id", runID,
		"documents", len(documents),
		"parallelism", r.parallelism)

	results := make([]Result, len(documents))

	g := new(errgroup.Group)
	g.SetLimit(r.parallelism)
	for i, doc := range documents {
		g.Go(func() error {
			results[i] = r.renderDocument(ctx, root, doc)
			return nil
		})
	}
	// Goroutines report through the results slice, never an error:
	// one failed document must not cancel its siblings.
	_ = g.Wait()

	summary := &Summary{
		RunID:    runID,
		Results:  results,
		Duration: time.Since(start),
	}

	r.logger.Info("Render run complete",
		"run_id", runID,
		"succeeded", len(summary.Succeeded()),
		"failed", len(summary.Failed()),
		"duration", summary.Duration)
	for _, failure := range summary.Failed() {
		r.logger.Error("Document failed",
			"run_id", runID,
			"document", failure.Name,
			"error", failure.Err)
	}

	return summary
}

// renderDocument runs the full pipeline for one document: read, parse,
// evaluate, sanitize, write.
func (r *Renderer) renderDocument(ctx context.Context, root templating.Value, doc Document) Result {
	start := time.Now()
	result := Result{Name: doc.Name, OutputPath: doc.OutputPath}

	finish := func(err error) Result {
		result.Err = err
		result.Duration = time.Since(start)
		r.observe(result)
		return result
	}

	if err := ctx.Err(); err != nil {
		return finish(fmt.Errorf("render canceled: %w", err))
	}

	raw, err := os.ReadFile(doc.TemplatePath)
	if err != nil {
		return finish(fmt.Errorf("failed to read template %s: %w", doc.TemplatePath, err))
	}
	template := string(raw)

	nodes, err := templating.Parse(template)
	if err != nil {
		r.logger.Debug("Template parse failed",
			"document", doc.Name,
			"detail", templating.FormatTemplateErrorShort(err, doc.TemplatePath))
		return finish(err)
	}

	output, err := templating.Render(nodes, root)
	if err != nil {
		return finish(err)
	}

	output, err = r.sanitize(output, doc.PostProcessors)
	if err != nil {
		return finish(err)
	}

	if err := writeOutput(doc.OutputPath, output); err != nil {
		return finish(err)
	}

	result.Bytes = len(output)
	r.logger.Debug("Document rendered",
		"document", doc.Name,
		"output", doc.OutputPath,
		"bytes", result.Bytes)
	return finish(nil)
}

// sanitize strips surviving directive tokens, then applies the
// document's own post-processors in order.
func (r *Renderer) sanitize(output string, processors []templating.PostProcessor) (string, error) {
	output, err := templating.NewDirectiveStripProcessor().Process(output)
	if err != nil {
		return "", err
	}

	for _, p := range processors {
		output, err = p.Process(output)
		if err != nil {
			return "", fmt.Errorf("post-processing failed: %w", err)
		}
	}
	return output, nil
}

// observe records the result in the run metrics, if any are attached.
func (r *Renderer) observe(result Result) {
	if r.metrics == nil {
		return
	}
	r.metrics.RenderDuration.Observe(result.Duration.Seconds())
	if result.Err != nil {
		r.metrics.DocumentFailures.Inc()
		return
	}
	r.metrics.DocumentsRendered.Inc()
}

// writeOutput writes the rendered document, creating the destination
// directory as needed.
func writeOutput(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write output %s: %w", path, err)
	}
	return nil
}
