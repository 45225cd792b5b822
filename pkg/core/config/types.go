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

// Package config provides data models for the documentation generator
// configuration.
//
// These models represent the structure of the YAML configuration file
// that names the catalog, the default licence used for suppression, and
// the template/output document pairs to render.
package config

// Config is the root configuration structure.
type Config struct {
	// Catalog locates the shader catalog input.
	Catalog CatalogConfig `yaml:"catalog"`

	// DefaultLicence is the project-default licence descriptor. Entry
	// licence fields equal to it are suppressed before rendering.
	DefaultLicence LicenceConfig `yaml:"default_licence"`

	// Documents lists the template/output pairs to render.
	Documents []DocumentConfig `yaml:"documents"`

	// Logging configures logging behavior.
	Logging LoggingConfig `yaml:"logging"`

	// Render contains render-batch settings.
	Render RenderConfig `yaml:"render"`
}

// CatalogConfig locates catalog input.
type CatalogConfig struct {
	// Path is the catalog YAML file.
	Path string `yaml:"path"`
}

// LicenceConfig is a (text, code) licence descriptor.
type LicenceConfig struct {
	// Text is the full licence text or name.
	Text string `yaml:"text"`

	// Code is the short licence identifier.
	Code string `yaml:"code"`
}

// DocumentConfig describes one document to render.
type DocumentConfig struct {
	// Name identifies the document in logs and summaries. Defaults to
	// the template path.
	Name string `yaml:"name"`

	// Template is the path of the template file.
	Template string `yaml:"template"`

	// Output is the path the rendered document is written to.
	Output string `yaml:"output"`

	// PostProcessors are applied to the rendered output in order,
	// after the built-in directive strip.
	PostProcessors []PostProcessorConfig `yaml:"post_processors"`
}

// PostProcessorConfig selects an output post-processor by type name with
// type-specific parameters. See the templating package for the
// supported types.
type PostProcessorConfig struct {
	// Type is the post-processor type ("directive_strip" or
	// "regex_replace").
	Type string `yaml:"type"`

	// Params contains type-specific configuration as key-value pairs.
	Params map[string]string `yaml:"params"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Verbose sets the log level: 0 = WARNING, 1 = INFO, 2 = DEBUG.
	Verbose int `yaml:"verbose"`
}

// RenderConfig contains render-batch settings.
type RenderConfig struct {
	// Parallelism bounds how many documents render concurrently.
	// Default: 4
	Parallelism int `yaml:"parallelism"`

	// Strict makes the render command exit non-zero when any document
	// fails. Failed documents never abort the rest of the batch either
	// way.
	Strict bool `yaml:"strict"`
}
