package script

import "errors"

var (
	// ErrFormat reports input that is not text at all.
	ErrFormat = errors.New("turn script is not text")
	// ErrSyntax reports text that is not a well-formed turn script.
	ErrSyntax = errors.New("invalid turn script")
)
