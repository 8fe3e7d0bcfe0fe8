package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderSubject(t *testing.T) {
	subject, _ := Render(Fields{Vehicle: "2019 Toyota Land Cruiser"})
	assert.Equal(t, "New Export Inquiry - 2019 Toyota Land Cruiser", subject)
}

func TestRenderBody(t *testing.T) {
	_, html := Render(Fields{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Vehicle: "2019 Toyota Land Cruiser",
		Country: "Kenya",
		Message: "Need shipping quote.",
	})

	assert.Contains(t, html, "Jane Doe")
	assert.Contains(t, html, "2019 Toyota Land Cruiser")
	assert.Contains(t, html, "Kenya")
	assert.Contains(t, html, "Need shipping quote.")
	assert.Contains(t, html, `<a href="mailto:jane@example.com">jane@example.com</a>`)
	assert.Contains(t, html, "Reply directly to this email")
}

func TestRenderMessageLineBreaks(t *testing.T) {
	_, html := Render(Fields{Message: "line one\nline two\nline three"})
	assert.Contains(t, html, "line one<br>line two<br>line three")
	assert.NotContains(t, html, "line one\nline two")
}

func TestRenderKeepsEscapedInput(t *testing.T) {
	// Fields arrive already escaped; the template must not undo that.
	_, html := Render(Fields{Name: "&lt;script&gt;"})
	assert.Contains(t, html, "&lt;script&gt;")
	assert.NotContains(t, html, "<script>")
}
