// Package validation implements the pure rule checks applied to inbound
// payloads. Checks accumulate every violation instead of stopping at the
// first, so a response can list all problems at once.
package validation

import (
	"net/mail"
	"strings"
	"unicode"
)

// Result carries the outcome of validating one payload. Errors preserves the
// order in which rules were evaluated.
type Result struct {
	Errors []string `json:"errors"`
}

// AddError appends a human-readable violation.
func (r *Result) AddError(message string) {
	r.Errors = append(r.Errors, message)
}

// HasError reports whether at least one rule was violated.
func (r *Result) HasError() bool {
	return len(r.Errors) > 0
}

func (r *Result) String() string {
	if len(r.Errors) == 0 {
		return "no validation errors"
	}
	return "the following errors occurred: " + strings.Join(r.Errors, "; ")
}

// Error wraps a failed Result so it can travel through error returns and be
// mapped to a bad-request response at the edge.
type Error struct {
	Result Result
}

func NewError(result Result) *Error {
	return &Error{Result: result}
}

func (e *Error) Error() string {
	return e.Result.String()
}

// IsValidEmail reports whether the address is RFC-shaped. The round-trip
// comparison rejects inputs the parser accepts only after normalization
// (display names, angle brackets, surrounding space).
func IsValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	return addr.Address == email
}

// IsSecurePassword reports whether the password meets the registration
// policy: at least 8 characters including a letter, a digit and a symbol.
func IsSecurePassword(password string) bool {
	if len(password) < 8 {
		return false
	}

	var hasLetter, hasDigit, hasSymbol bool
	for _, ch := range password {
		switch {
		case unicode.IsLetter(ch):
			hasLetter = true
		case unicode.IsDigit(ch):
			hasDigit = true
		default:
			hasSymbol = true
		}
	}
	return hasLetter && hasDigit && hasSymbol
}
