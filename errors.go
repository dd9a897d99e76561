package justext

import "github.com/go-justext/justext/internal/model"

// Error kinds returned by Extract and the stop-list loaders. Use errors.As
// to recover the concrete type. UnknownStoplistError also matches errors.Is
// against a zero-value *UnknownStoplistError (or one with the same Tag).
type (
	DecodeFailureError   = model.DecodeFailureError
	ParseFailureError    = model.ParseFailureError
	UnknownStoplistError = model.UnknownStoplistError
	InvalidOptionsError  = model.InvalidOptionsError
)
