package collector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func extractHTMLDoc(t *testing.T, doc, pageURL string) (*Result, []string) {
	t.Helper()
	c := New(nil)
	t.Cleanup(func() { _ = c.Close() })

	acc := newAccumulator()
	hrefs, err := c.extractHTML([]byte(doc), pageURL, acc)
	require.NoError(t, err)
	return acc.result(), hrefs
}

func TestExtractHTML_StyleBlock(t *testing.T) {
	res, _ := extractHTMLDoc(t, `
		<html><head><style>
			body { background: #fafafa; }
			h1 { color: #cc2200; }
		</style></head><body></body></html>
	`, "")

	bg := findColor(res, "#fafafa")
	require.NotNil(t, bg)
	assert.True(t, bg.Background)
	assert.Equal(t, WeightComputed, bg.Weight)

	require.NotNil(t, findColor(res, "#cc2200"))
}

func TestExtractHTML_InlineStyles(t *testing.T) {
	res, _ := extractHTMLDoc(t, `
		<html><body style="background-color: #0d1117">
			<div style="color: #58a6ff; font-family: Arial, sans-serif"></div>
		</body></html>
	`, "")

	bg := findColor(res, "#0d1117")
	require.NotNil(t, bg)
	assert.Equal(t, WeightComputed, bg.Weight)
	assert.True(t, bg.Background)

	div := findColor(res, "#58a6ff")
	require.NotNil(t, div)
	assert.Equal(t, WeightInline, div.Weight)

	require.Len(t, res.Fonts, 1)
	assert.Equal(t, "Arial, sans-serif", res.Fonts[0].Raw)
	assert.Equal(t, WeightInline, res.Fonts[0].Weight)
}

func TestExtractHTML_StylesheetLinks(t *testing.T) {
	_, hrefs := extractHTMLDoc(t, `
		<html><head>
			<link rel="stylesheet" href="/assets/main.css">
			<link rel="stylesheet" href="https://cdn.example.com/reset.css">
			<link rel="icon" href="/favicon.ico">
		</head></html>
	`, "https://example.com/page/")

	require.Len(t, hrefs, 2)
	assert.Equal(t, "https://example.com/assets/main.css", hrefs[0])
	assert.Equal(t, "https://cdn.example.com/reset.css", hrefs[1])
}

func TestExtractHTML_NoBaseURLPassesHrefsThrough(t *testing.T) {
	_, hrefs := extractHTMLDoc(t, `<link rel="stylesheet" href="styles/site.css">`, "")

	require.Len(t, hrefs, 1)
	assert.Equal(t, "styles/site.css", hrefs[0])
}
