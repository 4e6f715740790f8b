package orchestrator

import (
	"errors"
	"fmt"
)

// ErrInvalidURL is returned for video URLs that are not plausible http(s)
// sources. It is an input-class error, reported verbatim to the caller.
var ErrInvalidURL = errors.New("invalid video url")

// ErrClipTooLong is returned when the requested window exceeds the
// deployment's MaxClipSeconds policy.
var ErrClipTooLong = errors.New("requested clip exceeds maximum duration")

// Class buckets a pipeline failure for the transport layer: bad client
// input, a downstream tool/model failure, or an unexpected internal error.
type Class string

const (
	ClassInput    Class = "input"
	ClassUpstream Class = "upstream"
	ClassInternal Class = "internal"
)

// StageError reports which pipeline stage failed and how the failure should
// be classified. The wrapped error carries the detail.
type StageError struct {
	Stage string
	Class Class
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

func inputErr(stage string, err error) *StageError {
	return &StageError{Stage: stage, Class: ClassInput, Err: err}
}

func upstreamErr(stage string, err error) *StageError {
	return &StageError{Stage: stage, Class: ClassUpstream, Err: err}
}
