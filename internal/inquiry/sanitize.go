package inquiry

import (
	"strings"

	"driveline/internal/constants"
)

// htmlEscaper neutralizes markup in free text that ends up inside an HTML
// email body. The set is fixed: ampersands are left alone, so escaping is not
// idempotent and each field must pass through exactly once.
var htmlEscaper = strings.NewReplacer(
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
	"/", "&#x2F;",
)

func Sanitize(s string) string {
	return htmlEscaper.Replace(s)
}

// NormalizeEmail trims and lower-cases. The address is never HTML-escaped: it
// is used as a Reply-To header and inside an href, and the format check
// constrains it separately.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ResolveVehicle turns the catalog selection into a display name. "other"
// falls back to the customer's own model text, or a fixed placeholder when
// that is empty too.
func ResolveVehicle(vehicle, customModel string) string {
	if vehicle == "other" {
		if trimmed := strings.TrimSpace(customModel); trimmed != "" {
			return Sanitize(trimmed)
		}
		return constants.CustomVehicleFallback
	}
	return Sanitize(vehicle)
}
