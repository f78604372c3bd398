package parser

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedWorkbook indicates the input bytes are not a readable workbook.
	ErrMalformedWorkbook = errors.New("malformed workbook")
	// ErrUnsupportedFormat indicates a recognised container that holds an
	// unsupported workbook variant (legacy .xls, .xlsb, encrypted package).
	ErrUnsupportedFormat = errors.New("unsupported workbook format")
	// ErrResourceLimitExceeded indicates the input exceeds a configured limit.
	ErrResourceLimitExceeded = errors.New("resource limit exceeded")
)

// LimitError reports which limit was exceeded.
type LimitError struct {
	Limit string // "bytes", "unzipped_bytes", "sheets", "cells"
	Max   int64
	// Actual is -1 when the limit was hit before the full size was known.
	Actual int64
}

func (e *LimitError) Error() string {
	if e.Actual < 0 {
		return fmt.Sprintf("%v: %s exceed maximum %d", ErrResourceLimitExceeded, e.Limit, e.Max)
	}
	return fmt.Sprintf("%v: %s %d exceeds maximum %d", ErrResourceLimitExceeded, e.Limit, e.Actual, e.Max)
}

func (e *LimitError) Unwrap() error {
	return ErrResourceLimitExceeded
}

// FormatError describes why a container was rejected.
type FormatError struct {
	// Kind is ErrMalformedWorkbook or ErrUnsupportedFormat.
	Kind error
	// Reason is a short human readable explanation.
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v: %s: %v", e.Kind, e.Reason, e.Err)
	}
	return fmt.Sprintf("%v: %s", e.Kind, e.Reason)
}

// Unwrap exposes both the taxonomy sentinel and the underlying cause.
func (e *FormatError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

func malformed(reason string, err error) error {
	return &FormatError{Kind: ErrMalformedWorkbook, Reason: reason, Err: err}
}

func unsupported(reason string, err error) error {
	return &FormatError{Kind: ErrUnsupportedFormat, Reason: reason, Err: err}
}
