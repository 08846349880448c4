// Package resource provides a small tagged container for per-view fetch
// state, replacing the ad hoc loading/error/data flag triples every view
// would otherwise carry.
package resource

// State enumerates the lifecycle of a fetched value.
type State int

const (
	Idle State = iota
	Loading
	Ready
	Failed
)

// Resource holds one fetched value together with its lifecycle state.
// The zero value is Idle. Not safe for concurrent use.
type Resource[T any] struct {
	state State
	value T
	err   error
}

// Start marks the resource as loading. A previously ready value is kept so
// views can keep rendering stale data while a refresh is in flight.
func (r *Resource[T]) Start() {
	r.state = Loading
	r.err = nil
}

// Set stores a successfully fetched value.
func (r *Resource[T]) Set(v T) {
	r.state = Ready
	r.value = v
	r.err = nil
}

// Fail records a fetch failure. The prior value is left untouched.
func (r *Resource[T]) Fail(err error) {
	r.state = Failed
	r.err = err
}

// Reset returns the resource to Idle and drops the value.
func (r *Resource[T]) Reset() {
	var zero T
	r.state = Idle
	r.value = zero
	r.err = nil
}

func (r *Resource[T]) State() State  { return r.state }
func (r *Resource[T]) Err() error    { return r.err }
func (r *Resource[T]) Loading() bool { return r.state == Loading }

// Get returns the stored value and whether a value has ever been set and not
// reset since.
func (r *Resource[T]) Get() (T, bool) {
	var zero T
	if r.state == Ready {
		return r.value, true
	}
	if r.state == Idle {
		return zero, false
	}
	// Loading/Failed keep the last ready value, which may be the zero value.
	return r.value, false
}

// Value returns the stored value regardless of state.
func (r *Resource[T]) Value() T { return r.value }
