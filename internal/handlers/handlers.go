// Package handlers exposes the generated graph and the congestion simulator
// over HTTP. Validation happens here, before the simulator is invoked; the
// core packages assume clean inputs.
package handlers

// ErrorResponse is the JSON error response structure shared by all handlers.
type ErrorResponse struct {
	Error   string                 `json:"error"`
	Details map[string]interface{} `json:"details,omitempty"`
}
