package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidConfig    = errors.New("invalid config")
	ErrInvalidPhoto     = errors.New("invalid photo")
	ErrOutOfRange       = errors.New("index out of range")
	ErrEndOfSequence    = errors.New("end of sequence")
	ErrStartOfSequence  = errors.New("start of sequence")
	ErrNoCurrent        = errors.New("no current photo")
	ErrPhotoNotFound    = errors.New("photo not found")
	ErrUnknownCriterion = errors.New("unknown sort criterion")
	ErrNotPermutation   = errors.New("sort result is not a permutation of the album")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindNotFound      ErrorKind = "not_found"
	KindInvalidConfig ErrorKind = "invalid_config"
	KindInvalidPhoto  ErrorKind = "invalid_photo"
	KindOutOfRange    ErrorKind = "out_of_range"
	KindNavigation    ErrorKind = "navigation"
	KindExecution     ErrorKind = "execution"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// IsBoundary reports whether err is a navigation boundary rather than a failure.
// Callers show these as informational messages.
func IsBoundary(err error) bool {
	return IsKind(err, KindNavigation)
}
