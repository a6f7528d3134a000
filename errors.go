// errors.go: structured errors for sqrtcache
//
// This file provides structured error types using the go-errors library,
// with standardized error codes for configuration, verification and
// hot reload failures.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package sqrtcache

import (
	goerrors "errors"

	"github.com/agilira/go-errors"
)

// Error codes for sqrtcache operations
const (
	// Configuration errors
	ErrCodeInvalidConfig      errors.ErrorCode = "SQRTCACHE_INVALID_CONFIG"
	ErrCodeInvalidIterations  errors.ErrorCode = "SQRTCACHE_INVALID_ITERATIONS"
	ErrCodeInvalidReportEvery errors.ErrorCode = "SQRTCACHE_INVALID_REPORT_EVERY"
	ErrCodeNilCache           errors.ErrorCode = "SQRTCACHE_NIL_CACHE"

	// Verification errors
	ErrCodeMismatch     errors.ErrorCode = "SQRTCACHE_MISMATCH"
	ErrCodeOutputFailed errors.ErrorCode = "SQRTCACHE_OUTPUT_FAILED"

	// Hot reload errors
	ErrCodeWatcherFailed errors.ErrorCode = "SQRTCACHE_WATCHER_FAILED"
)

// Common error messages
const (
	msgInvalidConfig      = "invalid configuration"
	msgInvalidIterations  = "invalid iterations: must be non-negative"
	msgInvalidReportEvery = "invalid report interval: must be non-negative"
	msgNilCache           = "required cache or verifier is nil"
	msgMismatch           = "cached square root disagrees with direct computation"
	msgOutputFailed       = "failed to write progress line"
	msgWatcherFailed      = "failed to watch configuration file"
)

// =============================================================================
// CONFIGURATION ERRORS
// =============================================================================

// NewErrInvalidConfig creates an error for an unusable configuration field
func NewErrInvalidConfig(field string, reason string) error {
	return errors.NewWithContext(ErrCodeInvalidConfig, msgInvalidConfig, map[string]interface{}{
		"field":  field,
		"reason": reason,
	})
}

// NewErrInvalidIterations creates an error for a negative iteration bound
func NewErrInvalidIterations(iterations int64) error {
	return errors.NewWithContext(ErrCodeInvalidIterations, msgInvalidIterations, map[string]interface{}{
		"provided_iterations": iterations,
		"minimum_required":    0,
	})
}

// NewErrInvalidReportEvery creates an error for a negative report interval
func NewErrInvalidReportEvery(every int64) error {
	return errors.NewWithContext(ErrCodeInvalidReportEvery, msgInvalidReportEvery, map[string]interface{}{
		"provided_report_every": every,
		"minimum_required":      0,
	})
}

// NewErrNilCache creates an error when a component is built without its cache or verifier
func NewErrNilCache(component string) error {
	return errors.NewWithField(ErrCodeNilCache, msgNilCache, "component", component)
}

// =============================================================================
// VERIFICATION ERRORS
// =============================================================================

// NewErrMismatch creates the fatal error raised when the cache answers wrong
func NewErrMismatch(key uint8, cached uint8, expected uint8, iteration int64) error {
	return errors.NewWithContext(ErrCodeMismatch, msgMismatch, map[string]interface{}{
		"key":       key,
		"cached":    cached,
		"expected":  expected,
		"iteration": iteration,
	}).WithSeverity("critical")
}

// NewErrOutputFailed creates an error when a progress line cannot be written
func NewErrOutputFailed(iteration int64, cause error) error {
	return errors.Wrap(cause, ErrCodeOutputFailed, msgOutputFailed).
		WithContext("iteration", iteration)
}

// =============================================================================
// HOT RELOAD ERRORS
// =============================================================================

// NewErrWatcherFailed creates an error when argus cannot watch the config file
func NewErrWatcherFailed(path string, cause error) error {
	return errors.Wrap(cause, ErrCodeWatcherFailed, msgWatcherFailed).
		WithContext("config_path", path).
		AsRetryable()
}

// =============================================================================
// ERROR CHECKING HELPERS
// =============================================================================

// IsMismatch checks if error is a verification mismatch
func IsMismatch(err error) bool {
	return err != nil && errors.HasCode(err, ErrCodeMismatch)
}

// IsConfigError checks if error is a configuration error
func IsConfigError(err error) bool {
	code := GetErrorCode(err)
	return code == ErrCodeInvalidConfig || code == ErrCodeInvalidIterations ||
		code == ErrCodeInvalidReportEvery || code == ErrCodeNilCache
}

// IsRetryable checks if the error can be retried
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	var retryable errors.Retryable
	if goerrors.As(err, &retryable) {
		return retryable.IsRetryable()
	}
	return false
}

// GetErrorCode extracts the error code from an error
func GetErrorCode(err error) errors.ErrorCode {
	if err == nil {
		return ""
	}
	var coder errors.ErrorCoder
	if goerrors.As(err, &coder) {
		return coder.ErrorCode()
	}
	return ""
}

// GetErrorContext extracts context from an error
func GetErrorContext(err error) map[string]interface{} {
	if err == nil {
		return nil
	}
	var sqrtErr *errors.Error
	if goerrors.As(err, &sqrtErr) {
		return sqrtErr.Context
	}
	return nil
}
