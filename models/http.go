package models

// ProblemDetails is the structured error document returned on every expected
// or unexpected failure. The title stays generic; internal detail (stack
// traces, SQL, driver errors) is never placed here.
type ProblemDetails struct {
	// Status is the HTTP status code duplicated into the body.
	Status int `json:"status"`

	// Title is a short, generic description of the failure class.
	Title string `json:"title"`

	// Detail is an optional human-readable elaboration.
	Detail string `json:"detail,omitempty"`

	// Instance is the request path that produced the failure.
	Instance string `json:"instance,omitempty"`

	// Errors carries the per-field/message list for validation failures.
	Errors []string `json:"errors,omitempty"`
}
