package aggregate

import (
	"errors"
	"fmt"
)

// ErrUpstreamTimeout reports that the shared deadline elapsed before every
// upstream produced a value. Whenever the deadline has elapsed this error
// is returned, even if another upstream also failed for a different reason.
var ErrUpstreamTimeout = errors.New("upstream timed out")

// UpstreamError reports that an upstream failed for a reason other than a
// timeout. Cause preserves the original failure for diagnostics.
type UpstreamError struct {
	Cause error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream failure: %v", e.Cause)
}

func (e *UpstreamError) Unwrap() error { return e.Cause }
