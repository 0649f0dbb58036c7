package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTMLRendersEmphasis(t *testing.T) {
	got, err := ToHTML("Leaders in **applied AI**.")
	require.NoError(t, err)
	assert.Contains(t, string(got), "<strong>applied AI</strong>")
}

func TestToHTMLStripsScripts(t *testing.T) {
	got, err := ToHTML("hello <script>alert(1)</script> [x](https://example.com)")
	require.NoError(t, err)
	out := string(got)
	assert.NotContains(t, out, "<script>")
	assert.True(t, strings.Contains(out, `rel="nofollow"`), out)
}
