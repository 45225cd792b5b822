package config

import (
	"fmt"
)

// ValidateStructure performs basic structural validation on the
// configuration. Validates required fields, value ranges, and non-empty
// slices. Does NOT validate template syntax or catalog contents; those
// are checked when the files are loaded.
func ValidateStructure(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	if cfg.Catalog.Path == "" {
		return fmt.Errorf("catalog: path cannot be empty")
	}

	if err := validateLoggingConfig(&cfg.Logging); err != nil {
		return fmt.Errorf("logging: %w", err)
	}

	if err := validateRenderConfig(&cfg.Render); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if err := validateDocuments(cfg.Documents); err != nil {
		return fmt.Errorf("documents: %w", err)
	}

	return nil
}

// validateLoggingConfig validates the logging configuration.
func validateLoggingConfig(lc *LoggingConfig) error {
	if lc.Verbose < 0 || lc.Verbose > 2 {
		return fmt.Errorf("verbose must be 0 (WARNING), 1 (INFO), or 2 (DEBUG), got %d", lc.Verbose)
	}
	return nil
}

// validateRenderConfig validates the render configuration.
func validateRenderConfig(rc *RenderConfig) error {
	if rc.Parallelism < 1 {
		return fmt.Errorf("parallelism must be at least 1, got %d", rc.Parallelism)
	}
	return nil
}

// validateDocuments validates the document list.
func validateDocuments(docs []DocumentConfig) error {
	if len(docs) == 0 {
		return fmt.Errorf("at least one document must be configured")
	}

	names := make(map[string]struct{}, len(docs))
	outputs := make(map[string]struct{}, len(docs))
	for i, doc := range docs {
		if doc.Template == "" {
			return fmt.Errorf("document %d: template cannot be empty", i)
		}
		if doc.Output == "" {
			return fmt.Errorf("document %q: output cannot be empty", doc.Name)
		}
		if _, dup := names[doc.Name]; dup {
			return fmt.Errorf("duplicate document name %q", doc.Name)
		}
		names[doc.Name] = struct{}{}
		if _, dup := outputs[doc.Output]; dup {
			return fmt.Errorf("documents %q: duplicate output path %q", doc.Name, doc.Output)
		}
		outputs[doc.Output] = struct{}{}
	}
	return nil
}
