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

package templating

import (
	"fmt"
	"regexp"
	"strings"
)

// PostProcessor transforms rendered output before it is written.
// Processors are applied in sequence; each receives the output of the
// previous one.
type PostProcessor interface {
	// Process applies the transformation to the input string.
	Process(input string) (string, error)
}

// PostProcessorType identifies the type of post-processor.
type PostProcessorType string

const (
	// PostProcessorTypeDirectiveStrip removes directive tokens that
	// survived evaluation.
	PostProcessorTypeDirectiveStrip PostProcessorType = "directive_strip"

	// PostProcessorTypeRegexReplace applies regex-based find/replace.
	PostProcessorTypeRegexReplace PostProcessorType = "regex_replace"
)

// PostProcessorConfig defines configuration for a post-processor. Type
// selects the implementation; Params carries type-specific settings.
type PostProcessorConfig struct {
	Type PostProcessorType `yaml:"type"`

	// Params for regex_replace:
	//   - pattern: regular expression to match (required)
	//   - replace: replacement string (required)
	// directive_strip takes no parameters.
	Params map[string]string `yaml:"params"`
}

// NewPostProcessor creates a post-processor instance from configuration.
func NewPostProcessor(config PostProcessorConfig) (PostProcessor, error) {
	switch config.Type {
	case PostProcessorTypeDirectiveStrip:
		return NewDirectiveStripProcessor(), nil

	case PostProcessorTypeRegexReplace:
		pattern, ok := config.Params["pattern"]
		if !ok {
			return nil, fmt.Errorf("regex_replace processor requires 'pattern' parameter")
		}

		replace, ok := config.Params["replace"]
		if !ok {
			return nil, fmt.Errorf("regex_replace processor requires 'replace' parameter")
		}

		return NewRegexReplaceProcessor(pattern, replace)

	default:
		return nil, fmt.Errorf("unknown post-processor type: %s", config.Type)
	}
}

// directiveTokenRe matches a complete surviving directive token.
var directiveTokenRe = regexp.MustCompile(`\{\{[^{}]*\}\}`)

// DirectiveStripProcessor removes directive markers that survived
// evaluation. A correct parse/evaluate pass leaves none behind; the
// processor is a last line of defense so that a gap never leaks raw
// directive syntax into published documents.
type DirectiveStripProcessor struct{}

// NewDirectiveStripProcessor creates a directive strip processor.
func NewDirectiveStripProcessor() *DirectiveStripProcessor {
	return &DirectiveStripProcessor{}
}

// Process removes complete {{...}} tokens first, then any stray opening
// or closing delimiters left over from malformed directives.
func (p *DirectiveStripProcessor) Process(input string) (string, error) {
	out := directiveTokenRe.ReplaceAllString(input, "")
	out = strings.ReplaceAll(out, "{{", "")
	out = strings.ReplaceAll(out, "}}", "")
	return out, nil
}
