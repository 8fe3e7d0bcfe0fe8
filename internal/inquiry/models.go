package inquiry

// SubmitRequest is the contact form payload. Validation is done by hand in the
// service so that failures map to the exact client-facing messages; binding
// tags would short-circuit with gin's own wording.
type SubmitRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Vehicle     string `json:"vehicle"`
	CustomModel string `json:"customModel"`
	Country     string `json:"country"`
	Message     string `json:"message"`
	// Honeypot is a hidden field invisible to humans. Any value marks the
	// submission as automated.
	Honeypot string `json:"honeypot"`
}

type SubmitResponse struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId,omitempty"`
	Message   string `json:"message"`
}

// Result is what the service hands back for an accepted (or silently dropped)
// submission.
type Result struct {
	MessageID string
	Message   string
}
