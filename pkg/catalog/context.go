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

package catalog

// Statistics holds entry counts derived from the grouped catalog.
type Statistics struct {
	// Total is the number of entries across all categories. It always
	// equals len(Context.Flattened).
	Total int

	// ByCategory maps each category to its entry count.
	ByCategory map[Category]int
}

// Context is the root scope exposed to document templates. It is built
// once per run, after licence suppression, and read-only from then on:
// every document render walks the same Context, which is what makes
// rendering documents in parallel safe.
type Context struct {
	// Statistics holds total and per-category counts.
	Statistics Statistics

	// Grouped maps each category to its entries, preserving input order
	// within the group.
	Grouped map[Category][]Entry

	// Flattened is the union of all groups in group-then-within-group
	// order; every grouped entry appears exactly once.
	Flattened []Entry

	// Adapted holds the entries carrying third-party attribution
	// (credits.originalAuthor present).
	Adapted []Entry

	// Original holds the remaining entries. Adapted and Original
	// partition Flattened.
	Original []Entry
}

// BuildContext derives the render context from raw catalog entries.
// Entries are grouped by category (input order preserved within each
// group), flattened in the fixed category order, partitioned by
// attribution, and counted. Licence suppression against def is applied
// to fresh copies before anything else, so the returned Context never
// contains a field equal to the project default and is never mutated
// afterwards.
func BuildContext(entries []Entry, def DefaultLicence) *Context {
	suppressed := make([]Entry, 0, len(entries))
	for _, e := range entries {
		suppressed = append(suppressed, suppress(e, def))
	}

	grouped := make(map[Category][]Entry, len(Categories()))
	for _, e := range suppressed {
		grouped[e.Type] = append(grouped[e.Type], e)
	}

	flattened := make([]Entry, 0, len(suppressed))
	byCategory := make(map[Category]int, len(Categories()))
	for _, cat := range Categories() {
		flattened = append(flattened, grouped[cat]...)
		byCategory[cat] = len(grouped[cat])
	}

	var adapted, original []Entry
	for _, e := range flattened {
		if e.IsAdapted() {
			adapted = append(adapted, e)
		} else {
			original = append(original, e)
		}
	}

	return &Context{
		Statistics: Statistics{
			Total:      len(flattened),
			ByCategory: byCategory,
		},
		Grouped:   grouped,
		Flattened: flattened,
		Adapted:   adapted,
		Original:  original,
	}
}

// suppress returns a copy of the entry with licence fields equal to the
// project default cleared, independently for the entry itself and for
// its credits record. Downstream {{#if licence}} conditionals therefore
// only fire when a licence differs from the default.
func suppress(e Entry, def DefaultLicence) Entry {
	if def.Text != "" && e.Licence == def.Text {
		e.Licence = ""
	}
	if def.Code != "" && e.LicenseCode == def.Code {
		e.LicenseCode = ""
	}
	if e.Credits != nil {
		credits := *e.Credits
		if def.Text != "" && credits.Licence == def.Text {
			credits.Licence = ""
		}
		if def.Code != "" && credits.LicenseCode == def.Code {
			credits.LicenseCode = ""
		}
		e.Credits = &credits
	}
	return e
}

// Data converts the context into the plain map form consumed by the
// template engine's value model. Optional fields that are empty are
// omitted entirely so they resolve as absent rather than as empty
// strings with surprising truthiness.
func (c *Context) Data() map[string]any {
	stats := map[string]any{"total": c.Statistics.Total}
	groupedData := make(map[string]any, len(c.Grouped))
	for _, cat := range Categories() {
		stats[string(cat)] = c.Statistics.ByCategory[cat]
		groupedData[string(cat)] = entriesData(c.Grouped[cat])
	}

	return map[string]any{
		"statistics": stats,
		"grouped":    groupedData,
		"flattened":  entriesData(c.Flattened),
		"adapted":    entriesData(c.Adapted),
		"original":   entriesData(c.Original),
	}
}

func entriesData(entries []Entry) []any {
	out := make([]any, 0, len(entries))
	for _, e := range entries {
		out = append(out, entryData(e))
	}
	return out
}

func entryData(e Entry) map[string]any {
	data := map[string]any{
		"name":     e.Name,
		"filename": e.Filename,
		"type":     string(e.Type),
	}
	putNonEmpty(data, "shortDescription", e.ShortDescription)
	putNonEmpty(data, "longDescription", e.LongDescription)
	putNonEmpty(data, "imageUrl", e.ImageURL)
	putNonEmpty(data, "licence", e.Licence)
	putNonEmpty(data, "licenseCode", e.LicenseCode)

	if e.Credits != nil && !e.Credits.IsZero() {
		credits := map[string]any{}
		putNonEmpty(credits, "originalAuthor", e.Credits.OriginalAuthor)
		putNonEmpty(credits, "originalTitle", e.Credits.OriginalTitle)
		putNonEmpty(credits, "description", e.Credits.Description)
		putNonEmpty(credits, "externalUrl", e.Credits.ExternalURL)
		putNonEmpty(credits, "licence", e.Credits.Licence)
		putNonEmpty(credits, "licenseCode", e.Credits.LicenseCode)
		data["credits"] = credits
	}
	return data
}

func putNonEmpty(m map[string]any, key, value string) {
	if value != "" {
		m[key] = value
	}
}
