package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkdownWriter(t *testing.T) {
	w := NewMarkdownWriter()
	w.Frontmatter("Title", "multi\n  line   description")
	w.Header(2, "Section")
	w.Table([]string{"A", "B"}, [][]string{{"x|y", InlineCode("z")}})
	w.CodeBlock("bash", "logviews version\n")

	got := string(w.Bytes())
	assert.True(t, strings.HasPrefix(got, "---\ntitle: \"Title\"\ndescription: \"multi line description\"\n---\n"))
	assert.Contains(t, got, "## Section\n")
	assert.Contains(t, got, "| A | B |\n| --- | --- |\n| x\\|y | `z` |\n")
	assert.Contains(t, got, "```bash\nlogviews version\n```\n")
}

func TestMarkdownWriter_EmptyTableOmitted(t *testing.T) {
	w := NewMarkdownWriter()
	w.Table([]string{"A"}, nil)
	assert.Empty(t, w.Bytes())
}

func TestDedentExample(t *testing.T) {
	got := dedentExample("  # comment\n  logviews drilldown view.yaml\n")
	assert.Equal(t, "# comment\nlogviews drilldown view.yaml", got)
}

func TestCatalogPages(t *testing.T) {
	assert.Contains(t, string(cacheTypesPage().Bytes()), "`guava_cache`")
	assert.Contains(t, string(aggregationActionsPage().Bytes()), "| `groupBy` | Group By |")
	assert.Contains(t, string(filtersPage().Bytes()), "`stream_category`")
}
