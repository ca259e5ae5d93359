package output

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func TestEffectiveMode(t *testing.T) {
	tests := []struct {
		name  string
		mode  Mode
		isTTY bool
		want  Mode
	}{
		{name: "auto on terminal", mode: ModeAuto, isTTY: true, want: ModeText},
		{name: "auto piped", mode: ModeAuto, isTTY: false, want: ModeMarkdown},
		{name: "empty means auto", mode: "", isTTY: false, want: ModeMarkdown},
		{name: "explicit json", mode: ModeJSON, isTTY: true, want: ModeJSON},
		{name: "explicit text piped", mode: ModeText, isTTY: false, want: ModeText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRendererWithTTY(&bytes.Buffer{}, &bytes.Buffer{}, tt.isTTY, tt.mode)
			assert.Equal(t, tt.want, r.EffectiveMode())
		})
	}
}

func TestRenderer_Markdown(t *testing.T) {
	out := &bytes.Buffer{}
	r := NewRendererWithTTY(out, &bytes.Buffer{}, false, ModeMarkdown)

	r.Header(1, "Drilldown")
	r.KeyValue("Streams", "a, b")
	r.Table([]string{"Type", "Display Name"}, [][]string{{"none", "Do not cache values"}})

	got := out.String()
	assert.Contains(t, got, "# Drilldown")
	assert.Contains(t, got, "- **Streams:** a, b")
	assert.Contains(t, strings.ToLower(got), "| type | display name |")
	assert.Contains(t, got, "| none | Do not cache values |")
}

func TestRenderer_TextWithoutTTYHasNoANSI(t *testing.T) {
	out := &bytes.Buffer{}
	r := NewRendererWithTTY(out, &bytes.Buffer{}, false, ModeText)

	r.Header(1, "Caches")
	r.Success("done")
	r.Warning("careful")
	r.Table([]string{"A"}, [][]string{{"1"}})

	got := out.String()
	assert.False(t, ansiPattern.MatchString(got), "unexpected ANSI codes in %q", got)
	assert.Contains(t, got, "Caches")
	assert.Contains(t, got, "✓ done")
	assert.Contains(t, got, "! careful")
}

func TestRenderer_JSON(t *testing.T) {
	out := &bytes.Buffer{}
	r := NewRendererWithTTY(out, &bytes.Buffer{}, false, ModeJSON)

	require.NoError(t, r.JSON(map[string]int{"count": 2}))
	assert.JSONEq(t, `{"count": 2}`, out.String())
}

func TestFormatHeader(t *testing.T) {
	assert.Equal(t, "# Title", FormatHeader(0, "Title"))
	assert.Equal(t, "### Title", FormatHeader(3, "Title"))
}

func TestRenderer_ErrorGoesToStderr(t *testing.T) {
	tests := []struct {
		name string
		mode Mode
		want string
	}{
		{name: "markdown", mode: ModeMarkdown, want: "**Error:** boom\n"},
		{name: "text", mode: ModeText, want: "✗ boom\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
			r := NewRendererWithTTY(out, errOut, false, tt.mode)

			r.Error("boom")

			assert.Empty(t, out.String())
			assert.Equal(t, tt.want, errOut.String())
			assert.False(t, ansiPattern.MatchString(errOut.String()))
		})
	}
}
