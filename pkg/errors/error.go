// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package errors

import (
	"errors"
	"fmt"
)

// Error annotates an underlying error with what was being done when it happened
type Error struct {
	msg string
	err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.msg, e.err)
}

func (e *Error) Unwrap() error {
	return e.err
}

// Wrap returns nil if err is nil
func Wrap(msg string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{msg, err}
}

func Wrapf(err error, format string, a ...interface{}) error {
	if err == nil {
		return nil
	}
	return &Error{fmt.Sprintf(format, a...), err}
}

func Unwrap(err error) error {
	return errors.Unwrap(err)
}

func Is(err, target error) bool {
	return errors.Is(err, target)
}

func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Contains reports whether err or any error it wraps has the same message
// as v, which can be a string or an error
func Contains(err error, v interface{}) bool {
	var s string
	if v == nil {
		return err == nil
	}
	if err == nil {
		return false
	}
	switch t := v.(type) {
	case string:
		s = t
	case error:
		s = t.Error()
	default:
		return false
	}
	for {
		if err.Error() == s {
			return true
		}
		err = Unwrap(err)
		if err == nil {
			return false
		}
	}
}
