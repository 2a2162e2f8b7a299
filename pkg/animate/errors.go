package animate

import (
	"errors"
	"fmt"
)

// ErrConfiguration is the only error kind this package produces. It is
// raised at construction time for bad waypoints or cycle parameters; the
// per-frame evaluation functions are total and never fail.
var ErrConfiguration = errors.New("invalid animation configuration")

// configErrorf wraps ErrConfiguration with a specific reason.
func configErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfiguration, fmt.Sprintf(format, args...))
}
