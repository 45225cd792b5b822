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

// Package catalog provides the shader catalog data model and the
// derivation of the immutable render context consumed by templates.
package catalog

import "fmt"

// Category is the effect category an entry belongs to. The set is fixed
// and doubles as the ordering of groups in flattened output.
type Category string

const (
	// CategoryBGX is background effects.
	CategoryBGX Category = "BGX"

	// CategoryGFX is screen-space graphic effects.
	CategoryGFX Category = "GFX"

	// CategoryLFX is lighting effects.
	CategoryLFX Category = "LFX"

	// CategoryVFX is visual effects.
	CategoryVFX Category = "VFX"
)

// Categories returns all categories in their fixed presentation order.
func Categories() []Category {
	return []Category{CategoryBGX, CategoryGFX, CategoryLFX, CategoryVFX}
}

// ParseCategory validates a raw category string.
func ParseCategory(raw string) (Category, error) {
	switch Category(raw) {
	case CategoryBGX, CategoryGFX, CategoryLFX, CategoryVFX:
		return Category(raw), nil
	default:
		return "", fmt.Errorf("unknown category %q (expected one of BGX, GFX, LFX, VFX)", raw)
	}
}

// Credits records third-party attribution for an adapted effect.
// Presence of OriginalAuthor is what partitions the catalog into
// adapted and original entries.
type Credits struct {
	// OriginalAuthor is the author of the work the effect adapts.
	OriginalAuthor string `yaml:"originalAuthor"`

	// OriginalTitle is the title of the adapted work.
	OriginalTitle string `yaml:"originalTitle"`

	// Description explains what was adapted and how.
	Description string `yaml:"description"`

	// ExternalURL links to the adapted work.
	ExternalURL string `yaml:"externalUrl"`

	// Licence is the licence text of the adapted work. Suppressed when
	// it equals the project default.
	Licence string `yaml:"licence"`

	// LicenseCode is the short licence identifier of the adapted work.
	// Suppressed when it equals the project default.
	LicenseCode string `yaml:"licenseCode"`
}

// IsZero reports whether no credits information is present.
func (c Credits) IsZero() bool {
	return c == Credits{}
}

// Entry is one cataloged effect.
type Entry struct {
	// Name is the display name of the effect.
	Name string `yaml:"name"`

	// Filename is the shader source file and the unique key of the entry.
	Filename string `yaml:"filename"`

	// Type is the effect category.
	Type Category `yaml:"type"`

	// ShortDescription is a one-line summary for gallery listings.
	ShortDescription string `yaml:"shortDescription"`

	// LongDescription is the full description for detail pages.
	LongDescription string `yaml:"longDescription"`

	// ImageURL points at the preview image for the effect.
	ImageURL string `yaml:"imageUrl"`

	// Licence is the licence text. Suppressed when it equals the
	// project default, so templates only show non-default licences.
	Licence string `yaml:"licence"`

	// LicenseCode is the short licence identifier, suppressed like
	// Licence.
	LicenseCode string `yaml:"licenseCode"`

	// Credits holds third-party attribution, if any.
	Credits *Credits `yaml:"credits"`
}

// IsAdapted reports whether the entry carries third-party attribution.
func (e Entry) IsAdapted() bool {
	return e.Credits != nil && e.Credits.OriginalAuthor != ""
}

// DefaultLicence is the project-default licence descriptor used for
// suppression: entry licence fields equal to these values are cleared
// before rendering so templates can distinguish "default" from
// "explicitly set".
type DefaultLicence struct {
	// Text is the default licence text.
	Text string `yaml:"text"`

	// Code is the default short licence identifier.
	Code string `yaml:"code"`
}
