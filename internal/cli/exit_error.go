// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hill/hill"
	"github.com/katalvlaran/hill/internal/config"
)

// Process exit codes.
const (
	ExitOK            = 0
	ExitFailure       = 1 // bad input text, I/O errors
	ExitUsage         = 2 // bad key, dimension, flags or config
	ExitNotInvertible = 3 // decryption requested with an encrypt-only key
)

// ErrMissingKey is returned when neither --key nor HILL_KEY is set.
var ErrMissingKey = errors.New("cli: no key given (use --key or HILL_KEY)")

// ExitError signals a non-zero exit code without forcing os.Exit in RunE handlers.
type ExitError struct {
	Code int
	Err  error
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// classify attaches an exit code to err based on its sentinel.
// nil stays nil and an existing ExitError is returned unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return err
	}

	code := ExitFailure
	switch {
	case errors.Is(err, hill.ErrNotInvertible):
		code = ExitNotInvertible
	case errors.Is(err, hill.ErrInvalidKeyLength),
		errors.Is(err, hill.ErrInvalidDimension),
		errors.Is(err, config.ErrInvalidConfig),
		errors.Is(err, config.ErrConfigNotFound),
		errors.Is(err, ErrMissingKey),
		errors.Is(err, ErrInvalidMode):
		code = ExitUsage
	}

	return &ExitError{Code: code, Err: err}
}
