// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package schedule

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField indicates that an encoded schedule lacks a field.
	ErrMissingField = errors.New("missing field")
	// ErrUnknownField indicates that an encoded schedule has a field the
	// schedule does not define.
	ErrUnknownField = errors.New("unknown field")
	// ErrTruncated indicates that binary input ended inside a field.
	ErrTruncated = errors.New("unexpected end of input")
	// ErrTrailingBytes indicates that binary input continues past the last field.
	ErrTrailingBytes = errors.New("trailing bytes")
	// ErrTypeMismatch indicates that an encoded field has the wrong shape.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrLimitDecreased indicates that an upgrade lowers a limit.
	ErrLimitDecreased = errors.New("limit decreased")
	// ErrVersionDecreased indicates that an upgrade lowers the instruction
	// weights version.
	ErrVersionDecreased = errors.New("instruction weights version decreased")
	// ErrVersionNotBumped indicates that an upgrade changes instruction
	// weights without incrementing their version.
	ErrVersionNotBumped = errors.New("instruction weights changed without version bump")
	// ErrIntegrity indicates that a schedule is inconsistent with itself or
	// with the runtime it is deployed to.
	ErrIntegrity = errors.New("schedule integrity check failed")
)

// DecodeError reports why an encoded schedule could not be decoded. Field is
// the dotted path of the offending field, if known.
type DecodeError struct {
	Format string
	Field  string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("failed to decode %s schedule: field %s: %v", e.Format, e.Field, e.Err)
	}
	return fmt.Sprintf("failed to decode %s schedule: %v", e.Format, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
