package list

import "github.com/pkg/errors"

// ErrIndexOutOfRange indicates an index outside the range an operation accepts.
var ErrIndexOutOfRange = errors.New("index out of range")
