package templating

import "fmt"

// ParseError represents a template parse failure: an unterminated
// directive, a mismatched block tag, or an unsupported nesting such as
// an iteration block inside another iteration block.
type ParseError struct {
	// Line and Col locate the offending directive (1-based).
	Line int
	Col  int

	// Reason describes what the parser rejected.
	Reason string

	// TemplateSnippet contains the first 200 characters of the template.
	TemplateSnippet string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s", e.Line, e.Col, e.Reason)
}

// DepthError represents evaluation aborted because block recursion
// exceeded the configured limit. It guards against malformed or
// adversarial templates.
type DepthError struct {
	// Limit is the recursion depth that was exceeded.
	Limit int
}

// Error implements the error interface.
func (e *DepthError) Error() string {
	return fmt.Sprintf("template evaluation exceeded maximum depth of %d", e.Limit)
}

// NewParseError creates a ParseError located at line/col, keeping a
// truncated copy of the template for diagnostics.
func NewParseError(line, col int, reason, template string) *ParseError {
	snippet := template
	if len(snippet) > 200 {
		snippet = snippet[:200] + "..."
	}

	return &ParseError{
		Line:            line,
		Col:             col,
		Reason:          reason,
		TemplateSnippet: snippet,
	}
}

// NewDepthError creates a DepthError for the given limit.
func NewDepthError(limit int) *DepthError {
	return &DepthError{Limit: limit}
}
