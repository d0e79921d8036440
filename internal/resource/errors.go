package resource

import "errors"

var (
	ErrUnknownResourceKind = errors.New("unknown resource kind")
	ErrDuplicateKind       = errors.New("resource kind already registered")
)
