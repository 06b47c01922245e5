// Package diag holds the failure taxonomy shared by the engines: sentinel
// errors for fatal conditions and coded warnings for everything that lets a
// calculation continue.
package diag

import (
	"errors"
	"fmt"
	"math"
)

// Fatal conditions. Components wrap these with fmt.Errorf("...: %w") so
// callers can test them with errors.Is.
var (
	ErrUnsupportedFamily    = errors.New("unsupported section family")
	ErrIncompleteProperties = errors.New("incomplete property set")
	ErrInvalidInput         = errors.New("invalid input")
	ErrNotFound             = errors.New("profile not found")
	ErrAmbiguousLookup      = errors.New("ambiguous profile designation")
)

// Code identifies the kind of a non-fatal condition
type Code string

const (
	NonConvergence        Code = "W-NONCONV"
	MissingCriticalStress Code = "W-NOFCR"
	AmbiguousLookup       Code = "W-AMBIG"
	SlendernessLimit      Code = "W-SLENDER200"
	Surrogate             Code = "W-SURROGATE"
	Fallback              Code = "W-FALLBACK"
	Note                  Code = "W-NOTE"
)

// Warning is a non-fatal condition recorded on a result
type Warning struct {
	Code    Code   `json:"code"`
	Source  string `json:"source"`
	Message string `json:"message"`
}

func (w Warning) String() string {
	return fmt.Sprintf("[%s] %s: %s", w.Code, w.Source, w.Message)
}

// New builds a warning with a formatted message
func New(code Code, source, format string, args ...any) Warning {
	return Warning{Code: code, Source: source, Message: fmt.Sprintf(format, args...)}
}

// Warnings is an append-only list carried on result records
type Warnings []Warning

// Merge returns a fresh list holding a followed by every list in rest.
// None of the inputs is modified.
func Merge(a Warnings, rest ...Warnings) Warnings {
	n := len(a)
	for _, r := range rest {
		n += len(r)
	}
	out := make(Warnings, 0, n)
	out = append(out, a...)
	for _, r := range rest {
		out = append(out, r...)
	}
	return out
}

// With returns a fresh list with w appended
func (ws Warnings) With(w ...Warning) Warnings {
	return Merge(ws, w)
}

// Has reports whether any warning carries the code
func (ws Warnings) Has(code Code) bool {
	for _, w := range ws {
		if w.Code == code {
			return true
		}
	}
	return false
}

// Count returns how many warnings carry the code
func (ws Warnings) Count(code Code) int {
	n := 0
	for _, w := range ws {
		if w.Code == code {
			n++
		}
	}
	return n
}

// Invalid wraps ErrInvalidInput with a formatted reason
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidInput)
}

// Positive returns an ErrInvalidInput error naming the first value that is
// not a positive finite number
func Positive(pairs ...any) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		name, _ := pairs[i].(string)
		v, _ := pairs[i+1].(float64)
		if !(v > 0) || math.IsInf(v, 1) {
			return Invalid("%s must be positive: %s=%.4g", name, name, v)
		}
	}
	return nil
}
