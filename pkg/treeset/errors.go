package treeset

import "github.com/pkg/errors"

// ErrEmpty is returned by operations that need at least one element —
// Min, Max, RemoveMin, RemoveMax — when the set is empty.
var ErrEmpty = errors.New("empty set")
