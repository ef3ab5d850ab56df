// Package errs defines the error taxonomy shared by the scanner, ranker, and
// CLI. Sentinel markers let callers classify failures with errors.Is without
// losing the human-readable detail chain.
package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInput marks invalid user input: missing paths, unreadable roots,
	// malformed patterns.
	ErrInput = errors.New("input error")
	// ErrConfiguration marks invalid configuration values.
	ErrConfiguration = errors.New("configuration error")
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrInput
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// IsInput reports whether err is classified as bad user input.
func IsInput(err error) bool {
	return errors.Is(err, ErrInput)
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "failure"
	}
	return strings.Join(parts, ": ")
}
