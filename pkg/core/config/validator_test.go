package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg, err := LoadConfig(validConfigYAML)
	if err != nil {
		panic(err)
	}
	return cfg
}

func TestValidateStructure_Valid(t *testing.T) {
	require.NoError(t, ValidateStructure(validConfig()))
}

func TestValidateStructure_Nil(t *testing.T) {
	require.Error(t, ValidateStructure(nil))
}

func TestValidateStructure_MissingCatalogPath(t *testing.T) {
	cfg := validConfig()
	cfg.Catalog.Path = ""

	err := ValidateStructure(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog")
}

func TestValidateStructure_InvalidVerbose(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Verbose = 3

	err := ValidateStructure(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "verbose")
}

func TestValidateStructure_InvalidParallelism(t *testing.T) {
	cfg := validConfig()
	cfg.Render.Parallelism = 0

	err := ValidateStructure(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parallelism")
}

func TestValidateStructure_NoDocuments(t *testing.T) {
	cfg := validConfig()
	cfg.Documents = nil

	err := ValidateStructure(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "document")
}

func TestValidateStructure_MissingTemplate(t *testing.T) {
	cfg := validConfig()
	cfg.Documents[0].Template = ""

	require.Error(t, ValidateStructure(cfg))
}

func TestValidateStructure_MissingOutput(t *testing.T) {
	cfg := validConfig()
	cfg.Documents[0].Output = ""

	require.Error(t, ValidateStructure(cfg))
}

func TestValidateStructure_DuplicateName(t *testing.T) {
	cfg := validConfig()
	cfg.Documents[1].Name = cfg.Documents[0].Name

	err := ValidateStructure(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestValidateStructure_DuplicateOutput(t *testing.T) {
	cfg := validConfig()
	cfg.Documents[1].Output = cfg.Documents[0].Output

	err := ValidateStructure(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output")
}
