package collections

import "errors"

var (
	ErrValueExisted    = errors.New("value existed")
	ErrValueNotExisted = errors.New("value not existed")
	ErrNilSet          = errors.New("nil set operand")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrMalformedInsert = errors.New("malformed insert, at most one position allowed")
)
