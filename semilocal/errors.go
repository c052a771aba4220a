package semilocal

import "errors"

var (
	// ErrOutOfRange is returned by a semi-local query whose indices fall
	// outside the domain documented on that query.
	ErrOutOfRange = errors.New("semilocal: index out of range")
)
