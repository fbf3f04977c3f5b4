package valueobject

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode classifies a request or profile problem found before computation.
type ErrorCode string

const (
	CodeInvalidPrincipal ErrorCode = "InvalidPrincipal"
	CodeInvalidTerm      ErrorCode = "InvalidTerm"
	CodeInvalidRate      ErrorCode = "InvalidRate"
	CodeExceedsMaxAmount ErrorCode = "ExceedsMaxAmount"
	CodeNoEligibleBanks  ErrorCode = "NoEligibleBanks"
)

// ErrEmptyQuoteSet is returned by the ranker when given zero quotes. It marks
// a caller-logic mistake rather than bad user input.
var ErrEmptyQuoteSet = errors.New("empty quote set")

// Calculator input errors.
var (
	ErrInvalidRate = errors.New("annual rate must not be negative")
	ErrInvalidTerm = errors.New("term months must be positive")
)

// ValidationError describes one problem with a financing request. BankID and
// BankName are empty for request-level problems.
type ValidationError struct {
	Code     ErrorCode `json:"code"`
	BankID   string    `json:"bank_id,omitempty"`
	BankName string    `json:"bank_name,omitempty"`
	Message  string    `json:"message"`
}

func (e ValidationError) Error() string {
	if e.BankName != "" {
		return fmt.Sprintf("%s (%s): %s", e.Code, e.BankName, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ValidationErrors is the full accumulated list of problems for one request.
// Validation never stops at the first problem, so the caller can report all
// of them at once.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, v := range e {
		msgs[i] = v.Error()
	}
	return strings.Join(msgs, "; ")
}

// Has reports whether the list contains the given code.
func (e ValidationErrors) Has(code ErrorCode) bool {
	for _, v := range e {
		if v.Code == code {
			return true
		}
	}
	return false
}
