package model

import (
	"github.com/cockroachdb/errors"
)

// Error kinds. Errors returned by this module are marked with one of these,
// test with errors.Is.
var (
	ErrNotFound = errors.New("not found")
	ErrParse    = errors.New("parse error")
	ErrKey      = errors.New("key error")
	ErrWrite    = errors.New("write error")
)
