package config

// Default values for configuration fields.
const (
	// DefaultCatalogPath is the default catalog file location.
	DefaultCatalogPath = "catalog.yaml"

	// DefaultLicenceText is the project-default licence text used for
	// suppression when none is configured.
	DefaultLicenceText = "CC BY 4.0"

	// DefaultLicenceCode is the project-default short licence
	// identifier used for suppression when none is configured.
	DefaultLicenceCode = "CC-BY-4.0"

	// DefaultParallelism is the default number of documents rendered
	// concurrently.
	DefaultParallelism = 4
)

// setDefaults applies default values to unset configuration fields.
// This modifies the config in-place and should be called after parsing
// the configuration and before validation.
func setDefaults(cfg *Config) {
	if cfg.Catalog.Path == "" {
		cfg.Catalog.Path = DefaultCatalogPath
	}

	if cfg.DefaultLicence.Text == "" {
		cfg.DefaultLicence.Text = DefaultLicenceText
	}
	if cfg.DefaultLicence.Code == "" {
		cfg.DefaultLicence.Code = DefaultLicenceCode
	}

	// Logging defaults
	// Note: Verbose level 0 is valid (WARNING), so we don't set a default

	if cfg.Render.Parallelism == 0 {
		cfg.Render.Parallelism = DefaultParallelism
	}

	// Document names default to the template path
	for i := range cfg.Documents {
		if cfg.Documents[i].Name == "" {
			cfg.Documents[i].Name = cfg.Documents[i].Template
		}
	}
}
