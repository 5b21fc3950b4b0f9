package trafilatura_test

import (
	"testing"

	"github.com/fwojciec/linkaudit"
	"github.com/fwojciec/linkaudit/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements linkaudit.Extractor at compile time.
var _ linkaudit.Extractor = (*trafilatura.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts metadata and main content", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>Local Council Approves Budget</title>
<meta name="description" content="The council voted on the annual budget.">
</head>
<body>
<nav>Navigation here</nav>
<main>
<h1>Local Council Approves Budget</h1>
<p>The local council approved the annual budget on Tuesday after a long debate about road repairs and school funding.</p>
<p>Members said the new plan balances spending with the need to keep taxes stable for residents over the next year.</p>
</main>
<footer>Footer content</footer>
</body>
</html>`

		content := trafilatura.NewExtractor().Extract(html)

		require.NotNil(t, content.Title)
		assert.Contains(t, *content.Title, "Local Council Approves Budget")
		require.NotNil(t, content.Description)
		assert.Equal(t, "The council voted on the annual budget.", *content.Description)
		assert.Contains(t, content.BodyText, "approved the annual budget")
		assert.NotContains(t, content.BodyText, "Footer content")
		assert.Equal(t, html, content.RawHTML)
	})

	t.Run("degrades to empty content for blank input", func(t *testing.T) {
		t.Parallel()

		content := trafilatura.NewExtractor().Extract("   ")

		require.NotNil(t, content)
		assert.Nil(t, content.Title)
		assert.Nil(t, content.Description)
		assert.Empty(t, content.BodyText)
		assert.Equal(t, "   ", content.RawHTML)
	})
}
