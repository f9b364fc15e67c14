package analysis

import "errors"

// State is the lifecycle of a single user-triggered model request.
type State int

// Request states. There is no cancellation: a loading request runs to
// completion or failure.
const (
	StateIdle State = iota
	StateLoading
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ErrRequestInFlight is returned when a trigger fires while the previous
// request is still loading. Rejecting the second trigger is the only
// concurrency guard this type provides.
var ErrRequestInFlight = errors.New("a request is already in flight")

// Request tracks one slot of model output through idle, loading, and
// completed states. Illegal combinations (a result alongside an error) are
// unrepresentable: Start clears the previous outcome before the call runs
// and records exactly one of result or error after it.
type Request struct {
	state  State
	result string
	err    error
}

// State returns the current lifecycle state.
func (r *Request) State() State {
	return r.state
}

// Result returns the successful output, or "" unless state is StateDone.
func (r *Request) Result() string {
	return r.result
}

// Err returns the failure, or nil unless state is StateFailed.
func (r *Request) Err() error {
	return r.err
}

// Start runs one request to completion. The previous outcome is cleared
// before call runs, so a failure never leaves a stale result visible. A
// Start while loading is rejected with ErrRequestInFlight.
func (r *Request) Start(call func() (string, error)) error {
	if r.state == StateLoading {
		return ErrRequestInFlight
	}

	r.state = StateLoading
	r.result = ""
	r.err = nil

	result, err := call()
	if err != nil {
		r.state = StateFailed
		r.err = err
		return nil
	}

	r.state = StateDone
	r.result = result
	return nil
}
