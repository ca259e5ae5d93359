package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/leapstack-labs/logviews/internal/aggregation"
	"github.com/leapstack-labs/logviews/internal/lookup"
	"github.com/leapstack-labs/logviews/pkg/core"
)

// generateCatalogDocs generates reference pages for the built-in catalogs.
func generateCatalogDocs(outDir string) error {
	log.Printf("Generating catalog docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	pages := map[string]func() *MarkdownWriter{
		"cache-types.md":         cacheTypesPage,
		"aggregation-actions.md": aggregationActionsPage,
		"filters.md":             filtersPage,
	}
	for name, page := range pages {
		if err := os.WriteFile(filepath.Join(outDir, name), page().Bytes(), 0600); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
		log.Printf("  Generated %s", name)
	}
	return nil
}

func cacheTypesPage() *MarkdownWriter {
	w := NewMarkdownWriter()
	w.Frontmatter("Cache Types", "Lookup-table cache types")
	w.GeneratedMarker()

	w.Header(1, "Cache Types")
	w.Paragraph("The `config.type` of a cache selects one of these types:")

	var rows [][]string
	for _, ct := range lookup.DefaultRegistry().Types() {
		summary := "No"
		if ct.Summary != nil {
			summary = "Yes"
		}
		rows = append(rows, []string{InlineCode(ct.Type), ct.DisplayName, summary})
	}
	w.Table([]string{"Type", "Name", "Settings Summary"}, rows)

	w.Header(2, "Example")
	w.CodeBlock("yaml", `caches:
  - name: users
    title: User cache
    config:
      type: guava_cache
      max_size: 1000
      expire_after_access: 60
      expire_after_access_unit: SECONDS`)
	return w
}

func aggregationActionsPage() *MarkdownWriter {
	w := NewMarkdownWriter()
	w.Frontmatter("Aggregation Actions", "Sections of the aggregation wizard")
	w.GeneratedMarker()

	w.Header(1, "Aggregation Actions")
	w.Paragraph("Each section can be added once per widget. Configured sections are not offered again.")

	var rows [][]string
	for _, a := range aggregation.DefaultActions() {
		rows = append(rows, []string{InlineCode(a.Key), a.Label})
	}
	w.Table([]string{"Key", "Label"}, rows)
	return w
}

func filtersPage() *MarkdownWriter {
	w := NewMarkdownWriter()
	w.Frontmatter("Filters", "Query filter types")
	w.GeneratedMarker()

	w.Header(1, "Filters")
	w.Paragraph("Filters of a search query. Streams referenced anywhere in the tree scope drill-down searches.")

	w.Table([]string{"Type", "Fields", "Streams"}, [][]string{
		{InlineCode(core.FilterTypeOr), "`filters`", "Union of children"},
		{InlineCode(core.FilterTypeAnd), "`filters`", "Union of children"},
		{InlineCode(core.FilterTypeStream), "`id`", "The stream"},
		{InlineCode(core.FilterTypeStreamCategory), "`category`", "Streams configured for the category"},
		{InlineCode(core.FilterTypeQueryString), "`query`", "None"},
	})

	w.BulletList([]string{
		"Unknown filter types are kept and contribute no streams.",
		"Each stream appears once, in first-seen order.",
	})
	return w
}
