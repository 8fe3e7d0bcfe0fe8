package inquiry

import (
	"regexp"
	"strings"
)

// emailPattern is intentionally permissive: anything@anything.anything. The
// business has accepted addresses a stricter RFC check would reject, so the
// shape is pinned. See DESIGN.md for the sign-off note.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsBot reports whether the hidden honeypot field was filled in. Any value
// counts, whitespace included: humans never see the field, so even a stray
// space means automation.
func IsBot(req SubmitRequest) bool {
	return req.Honeypot != ""
}

// MissingFields lists required fields that are empty after trimming, in form
// order.
func MissingFields(req SubmitRequest) []string {
	var missing []string
	if strings.TrimSpace(req.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(req.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(req.Country) == "" {
		missing = append(missing, "country")
	}
	return missing
}

func ValidEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}
