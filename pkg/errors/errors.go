package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorCategory classifies the failures that can occur while checksumming
// or verifying files. It lets callers decide how to report or react to
// an error without string matching.
type ErrorCategory int

const (
	// ErrorIO indicates the input could not be opened or read, such as a
	// missing file, a permission problem or a stream failing mid-read.
	ErrorIO ErrorCategory = iota + 1

	// ErrorDecompression indicates a compressed input was corrupt or used
	// a format other than the one configured.
	ErrorDecompression

	// ErrorMismatch indicates the computed checksum or size differs from
	// the expected value.
	ErrorMismatch

	// ErrorManifest indicates a manifest could not be parsed or encoded.
	ErrorManifest
)

// String returns the string representation of the error category.
func (c ErrorCategory) String() string {
	switch c {
	case ErrorIO:
		return "io"
	case ErrorDecompression:
		return "decompression"
	case ErrorMismatch:
		return "mismatch"
	case ErrorManifest:
		return "manifest"
	default:
		return "unknown"
	}
}

type ChecksumError struct {
	Err       error
	Path      string
	Operation string
	Timestamp time.Time
	Category  ErrorCategory
}

// NewChecksumError creates a ChecksumError stamped with the current time.
func NewChecksumError(category ErrorCategory, operation, path string, err error) *ChecksumError {
	return &ChecksumError{
		Err:       err,
		Path:      path,
		Category:  category,
		Operation: operation,
		Timestamp: time.Now(),
	}
}

func (e *ChecksumError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("[%v] %s: %v", e.Category, e.Operation, e.Err)
	}
	return fmt.Sprintf("[%v] %s %s: %v", e.Category, e.Operation, e.Path, e.Err)
}

func (e *ChecksumError) Unwrap() error {
	return e.Err
}

// IsRetryAble returns whether errors of this category can be retried.
func (e *ChecksumError) IsRetryAble() bool {
	switch e.Category {
	case ErrorIO:
		// The file may reappear or the device may recover.
		return true
	case ErrorDecompression, ErrorMismatch, ErrorManifest:
		// Same bytes, same answer.
		return false
	default:
		return false
	}
}

// IsCategory reports whether err wraps a ChecksumError of the given category.
func IsCategory(err error, category ErrorCategory) bool {
	var ce *ChecksumError
	if errors.As(err, &ce) {
		return ce.Category == category
	}
	return false
}
