package mailer

import (
	"fmt"
	"strings"

	"driveline/internal/constants"
)

// Render builds the notification subject and HTML body from sanitized fields.
// Pure function, kept apart from the transport so it can be tested on its own.
func Render(f Fields) (subject, html string) {
	subject = constants.SubjectPrefix + f.Vehicle

	var b strings.Builder
	b.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">`)
	b.WriteString(`<h2 style="color: #1a1a2e; border-bottom: 2px solid #e94560; padding-bottom: 8px;">New Export Inquiry</h2>`)

	writeRow(&b, "Name", f.Name)
	writeRow(&b, "Email", fmt.Sprintf(`<a href="mailto:%s">%s</a>`, f.Email, f.Email))
	writeRow(&b, "Vehicle", f.Vehicle)
	writeRow(&b, "Country", f.Country)

	b.WriteString(`<p style="margin: 16px 0 4px; color: #666; font-size: 13px; text-transform: uppercase;">Message</p>`)
	b.WriteString(`<div style="background: #f5f5f5; padding: 12px; border-radius: 4px; white-space: normal;">`)
	b.WriteString(strings.ReplaceAll(f.Message, "\n", "<br>"))
	b.WriteString(`</div>`)

	b.WriteString(`<p style="margin-top: 24px; color: #999; font-size: 12px;">Reply directly to this email to reach the customer.</p>`)
	b.WriteString(`</div>`)

	return subject, b.String()
}

func writeRow(b *strings.Builder, label, value string) {
	b.WriteString(`<p style="margin: 8px 0;"><span style="color: #666; font-size: 13px; text-transform: uppercase;">`)
	b.WriteString(label)
	b.WriteString(`:</span> `)
	b.WriteString(value)
	b.WriteString(`</p>`)
}
