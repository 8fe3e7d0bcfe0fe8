package constants

import "time"

const (
	ServiceName = "inquiry-service"
)

const (
	DefaultHTTPTimeout = 10 * time.Second
	ShutdownTimeout    = 5 * time.Second
)

const (
	// UnknownClientAddr is the sentinel used when no client address can be
	// resolved from the proxy headers.
	UnknownClientAddr = "unknown"
)

const (
	CacheKeyPrefixQuota = "quota:"
)

const (
	// DefaultMessage stands in when a customer leaves the message box empty.
	DefaultMessage = "No message provided"

	// CustomVehicleFallback is shown when "other" is selected with no model text.
	CustomVehicleFallback = "Custom vehicle request"

	SubjectPrefix = "New Export Inquiry - "
)

// Operator mailboxes that receive every inquiry. Fixed by the business, not
// configurable per request.
var OperatorRecipients = []string{
	"sales@drivelineexports.com",
	"exports@drivelineexports.com",
}

const (
	DefaultMailFrom     = "Driveline Exports <inquiries@drivelineexports.com>"
	DefaultMailEndpoint = "https://api.resend.com/emails"
)

const (
	ThankYouMessage = "Thank you for your inquiry! Our export team will get back to you within 24 hours."
)
