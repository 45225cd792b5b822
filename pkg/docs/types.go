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

// Package docs orchestrates batch document rendering: it runs the
// template engine over a shared catalog context for every configured
// template/output pair and reports a per-run summary.
package docs

import (
	"time"

	"github.com/LeonAquitaine/as-stagefx-sub005/pkg/templating"
)

// Document is one template/output pair to render.
type Document struct {
	// Name identifies the document in logs and the run summary.
	Name string

	// TemplatePath is the template file to read.
	TemplatePath string

	// OutputPath is where the rendered document is written.
	OutputPath string

	// PostProcessors run over the rendered output, after the built-in
	// directive strip.
	PostProcessors []templating.PostProcessor
}

// Result records the outcome of rendering one document.
type Result struct {
	// Name is the document name.
	Name string

	// OutputPath is the destination the document was written to.
	OutputPath string

	// Err is the failure reason, nil on success.
	Err error

	// Bytes is the size of the written output.
	Bytes int

	// Duration is how long the document took to render and write.
	Duration time.Duration
}

// Summary describes a whole render run. One failed document never
// aborts the others, so the summary may mix successes and failures.
type Summary struct {
	// RunID uniquely identifies the run in logs.
	RunID string

	// Results holds one entry per requested document, in request order.
	Results []Result

	// Duration is the wall-clock time of the whole run.
	Duration time.Duration
}

// Succeeded returns the results of documents that rendered successfully.
func (s *Summary) Succeeded() []Result {
	return s.filter(func(r Result) bool { return r.Err == nil })
}

// Failed returns the results of documents that failed, with reasons.
func (s *Summary) Failed() []Result {
	return s.filter(func(r Result) bool { return r.Err != nil })
}

// OK reports whether every document rendered successfully.
func (s *Summary) OK() bool {
	return len(s.Failed()) == 0
}

func (s *Summary) filter(keep func(Result) bool) []Result {
	var out []Result
	for _, r := range s.Results {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
