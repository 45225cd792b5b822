package templating

import (
	"errors"
	"fmt"
	"strings"
)

// FormatTemplateError formats a parse or evaluation error into a
// human-readable multi-line message.
//
// For parse errors the output includes the error location, the
// offending template line, and a caret marking the column. Depth errors
// and other errors fall back to a plain one-line report. The formatted
// string is intended for CLI output; log lines should carry the raw
// error instead.
func FormatTemplateError(err error, templateName, templateContent string) string {
	if err == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Template Error: %s\n", templateName))
	b.WriteString(strings.Repeat("-", 60))
	b.WriteString("\n")

	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		b.WriteString(fmt.Sprintf("Location: Line %d, Column %d\n", parseErr.Line, parseErr.Col))
		b.WriteString(fmt.Sprintf("Problem:  %s\n", parseErr.Reason))

		if context := extractTemplateContext(templateContent, parseErr.Line, parseErr.Col); context != "" {
			b.WriteString("\n")
			b.WriteString("Template Context:\n")
			b.WriteString(context)
		}
		return b.String()
	}

	var depthErr *DepthError
	if errors.As(err, &depthErr) {
		b.WriteString(fmt.Sprintf("Problem:  %s\n", depthErr.Error()))
		b.WriteString("Hint: the template nests blocks deeper than the evaluator allows;\n")
		b.WriteString("      flatten the block structure or split the document.\n")
		return b.String()
	}

	problem := err.Error()
	if len(problem) > 100 {
		problem = problem[:97] + "..."
	}
	b.WriteString(fmt.Sprintf("Problem:  %s\n", problem))
	return b.String()
}

// FormatTemplateErrorShort returns a single-line version of the error
// for logging contexts where multi-line output isn't appropriate.
func FormatTemplateErrorShort(err error, templateName string) string {
	if err == nil {
		return ""
	}

	parts := []string{fmt.Sprintf("Template: %s", templateName)}

	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		parts = append(parts, fmt.Sprintf("Line %d Col %d", parseErr.Line, parseErr.Col), parseErr.Reason)
		return strings.Join(parts, " | ")
	}

	problem := err.Error()
	if len(problem) > 60 {
		problem = problem[:57] + "..."
	}
	parts = append(parts, problem)
	return strings.Join(parts, " | ")
}

// extractTemplateContext extracts the template line around the error
// location, with a caret pointing at the column.
func extractTemplateContext(templateContent string, line, column int) string {
	lines := strings.Split(templateContent, "\n")

	if line < 1 || line > len(lines) {
		return ""
	}

	var builder strings.Builder

	errorLine := lines[line-1]
	builder.WriteString(fmt.Sprintf("%d | %s\n", line, errorLine))

	if column > 0 && column <= len(errorLine)+1 {
		lineNumWidth := len(fmt.Sprintf("%d", line))
		padding := lineNumWidth + 3 + column - 1
		builder.WriteString(strings.Repeat(" ", padding))
		builder.WriteString("^\n")
	}

	return builder.String()
}
