// SPDX-License-Identifier: Unlicense OR MIT

package gesture

import "errors"

// ErrConfig is wrapped by every configuration error. Configuration
// errors are returned at the call that caused them and are never
// retried.
var ErrConfig = errors.New("gesture: invalid configuration")

var (
	// ErrDragLimit is returned for a drag limit outside (0, 1).
	ErrDragLimit = wrapConfig("drag limit must be between 0 and 1, exclusive")
	// ErrNoRegions is returned for a container without regions.
	ErrNoRegions = wrapConfig("at least one region is required")
	// ErrRegionCount is returned when the single drag region
	// mode is configured with more or fewer than one region.
	ErrRegionCount = wrapConfig("single mode requires exactly one region")
	// ErrDuplicateRegion is returned when a region tag is listed twice.
	ErrDuplicateRegion = wrapConfig("duplicate region")
	// ErrNilRegion is returned for a nil region tag.
	ErrNilRegion = wrapConfig("nil region")
)

// The non-fatal conditions below abandon the current gesture. They are
// logged, never returned.
var (
	// ErrMissingRegion reports a region the host no longer knows.
	ErrMissingRegion = errors.New("gesture: region missing from host")
	// ErrInvalidPointer reports a press without a valid pointer id.
	ErrInvalidPointer = errors.New("gesture: invalid pointer")
)

type configError struct {
	msg string
}

func wrapConfig(msg string) error {
	return &configError{msg: msg}
}

func (e *configError) Error() string {
	return "gesture: invalid configuration: " + e.msg
}

func (e *configError) Unwrap() error {
	return ErrConfig
}
