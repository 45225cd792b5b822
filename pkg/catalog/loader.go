package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// catalogFile is the on-disk shape of the catalog. Exactly one of the
// two forms may be used: a flat entry list, or entries pre-grouped by
// category (in which case the group key supplies the entry type).
type catalogFile struct {
	Entries []Entry            `yaml:"entries"`
	Groups  map[string][]Entry `yaml:"groups"`
}

// LoadFile reads and parses a catalog file. Any malformed input is an
// error; a partial catalog is never produced.
func LoadFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	entries, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}
	return entries, nil
}

// Parse decodes catalog YAML into a validated entry list. Grouped input
// is flattened in the fixed category order; flat input keeps its own
// order. Validation rejects entries with a missing name or filename, an
// unknown category, or a duplicate filename.
func Parse(data []byte) ([]Entry, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal YAML: %w", err)
	}

	if len(file.Entries) > 0 && len(file.Groups) > 0 {
		return nil, fmt.Errorf("catalog defines both 'entries' and 'groups'; use one form")
	}

	var entries []Entry
	switch {
	case len(file.Groups) > 0:
		flattened, err := flattenGroups(file.Groups)
		if err != nil {
			return nil, err
		}
		entries = flattened
	case len(file.Entries) > 0:
		entries = file.Entries
	default:
		return nil, fmt.Errorf("catalog defines no entries")
	}

	if err := validateEntries(entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// flattenGroups converts pre-grouped input into a flat list, walking
// groups in the fixed category order. The group key assigns the entry
// type when unset and must agree with it when set.
func flattenGroups(groups map[string][]Entry) ([]Entry, error) {
	for key := range groups {
		if _, err := ParseCategory(key); err != nil {
			return nil, fmt.Errorf("invalid catalog group %q: %w", key, err)
		}
	}

	var entries []Entry
	for _, cat := range Categories() {
		for _, e := range groups[string(cat)] {
			if e.Type == "" {
				e.Type = cat
			} else if e.Type != cat {
				return nil, fmt.Errorf("entry %q declares type %q inside group %q", e.Filename, e.Type, cat)
			}
			entries = append(entries, e)
		}
	}
	return entries, nil
}

// validateEntries enforces the catalog invariants shared by both input
// forms.
func validateEntries(entries []Entry) error {
	seen := make(map[string]struct{}, len(entries))
	for i, e := range entries {
		if e.Name == "" {
			return fmt.Errorf("entry %d: missing name", i)
		}
		if e.Filename == "" {
			return fmt.Errorf("entry %q: missing filename", e.Name)
		}
		if _, err := ParseCategory(string(e.Type)); err != nil {
			return fmt.Errorf("entry %q: %w", e.Filename, err)
		}
		if _, dup := seen[e.Filename]; dup {
			return fmt.Errorf("duplicate filename %q", e.Filename)
		}
		seen[e.Filename] = struct{}{}
	}
	return nil
}
