// Package models defines the JSON documents shared by the command-line JSON
// output and the HTTP API, so both front ends emit the same shape.
package models

// CalculationResult is a successful calculation.
type CalculationResult struct {
	// N is the requested index.
	N int `json:"n"`
	// Result is F(N). It always fits in an unsigned 64-bit integer.
	Result uint64 `json:"result"`
	// Hex is F(N) in hexadecimal with a 0x prefix, set only when requested.
	Hex string `json:"hex,omitempty"`
	// Duration is the wall-clock calculation time as a Go duration string.
	Duration string `json:"duration"`
	// Algorithm names the calculator that produced the value.
	Algorithm string `json:"algorithm"`
}

// ErrorResult is a failed calculation or request.
type ErrorResult struct {
	// Error is a short machine-readable kind such as "invalid_argument".
	Error string `json:"error"`
	// Message is the human-readable detail.
	Message string `json:"message"`
	// N is the requested index when one was parsed.
	N *int `json:"n,omitempty"`
}

// Error kinds used in ErrorResult.Error.
const (
	ErrorKindBadRequest       = "bad_request"
	ErrorKindInvalidArgument  = "invalid_argument"
	ErrorKindMethodNotAllowed = "method_not_allowed"
	ErrorKindInternal         = "internal_error"
)
