package errors

import "errors"

var (
	ErrSyntax          = errors.New("syntax error")
	ErrNoProcessID     = errors.New("missing process id")
	ErrInvalidSize     = errors.New("invalid size")
	ErrInvalidStrategy = errors.New("invalid placement strategy")
)
