// Package asset provides handles to resources that become available asynchronously.
//
// A Handle is polled once per frame by the scene. It starts Pending and moves exactly once
// to either Loaded or Failed.
package asset

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/Carmen-Shannon/automation/tools/worker"
)

// State is the load state of a Handle.
type State int32

const (
	// StatePending means the resource is still being produced.
	StatePending State = iota
	// StateLoaded means the resource is available through Get.
	StateLoaded
	// StateFailed means the producer returned an error; Err reports it.
	StateFailed
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	}
	return fmt.Sprintf("State(%d)", int32(s))
}

var (
	// ErrNotReady is returned by Err while the handle is still pending.
	ErrNotReady = errors.New("asset: not ready")

	// ErrAlreadySettled is returned by Resolve and Fail on a handle that already left Pending.
	ErrAlreadySettled = errors.New("asset: handle already settled")
)

var nextTaskID atomic.Int64

// Handle is a reference to a resource of type T that may not be loaded yet.
// All methods are safe for concurrent use.
type Handle[T any] struct {
	name  string
	state atomic.Int32

	mu    sync.RWMutex
	value T
	err   error
}

// NewPending creates a Handle in StatePending that is settled by Resolve or Fail.
//
// Parameters:
//   - name: the resource name used in logs and errors
//
// Returns:
//   - *Handle[T]: the pending handle
func NewPending[T any](name string) *Handle[T] {
	return &Handle[T]{name: name}
}

// Loaded creates a Handle that is already in StateLoaded.
//
// Parameters:
//   - name: the resource name
//   - v: the resource value
//
// Returns:
//   - *Handle[T]: the loaded handle
func Loaded[T any](name string, v T) *Handle[T] {
	h := NewPending[T](name)
	_ = h.Resolve(v)
	return h
}

// Load runs fn in the background and returns a pending Handle that settles with its result.
// When pool is nil a dedicated goroutine is used instead.
//
// Parameters:
//   - pool: the worker pool to run the producer on, or nil
//   - name: the resource name
//   - fn: the producer
//
// Returns:
//   - *Handle[T]: the pending handle
func Load[T any](pool worker.DynamicWorkerPool, name string, fn func() (T, error)) *Handle[T] {
	h := NewPending[T](name)
	run := func() (any, error) {
		v, err := fn()
		if err != nil {
			log.Printf("[Asset] %s failed: %v", name, err)
			_ = h.Fail(err)
			return nil, err
		}
		_ = h.Resolve(v)
		return v, nil
	}

	if pool == nil {
		go run()
		return h
	}
	pool.SubmitTask(worker.Task{
		ID: int(nextTaskID.Add(1)),
		Do: run,
	})
	return h
}

// Name returns the resource name.
func (h *Handle[T]) Name() string {
	return h.name
}

// State returns the current load state.
func (h *Handle[T]) State() State {
	return State(h.state.Load())
}

// Ready reports whether the resource is loaded.
func (h *Handle[T]) Ready() bool {
	return h.State() == StateLoaded
}

// Get returns the resource and true once loaded, or the zero value and false otherwise.
func (h *Handle[T]) Get() (T, bool) {
	if !h.Ready() {
		var zero T
		return zero, false
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.value, true
}

// Err returns nil when loaded, ErrNotReady while pending, and the producer's error
// wrapped with the resource name when failed.
func (h *Handle[T]) Err() error {
	switch h.State() {
	case StateLoaded:
		return nil
	case StatePending:
		return ErrNotReady
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	return fmt.Errorf("asset %s: %w", h.name, h.err)
}

// Resolve moves a pending handle to StateLoaded with v.
//
// Parameters:
//   - v: the resource value
//
// Returns:
//   - error: ErrAlreadySettled if the handle is not pending
func (h *Handle[T]) Resolve(v T) error {
	return h.settle(StateLoaded, v, nil)
}

// Fail moves a pending handle to StateFailed with err.
//
// Parameters:
//   - err: the load failure; a nil err is recorded as ErrNotReady
//
// Returns:
//   - error: ErrAlreadySettled if the handle is not pending
func (h *Handle[T]) Fail(err error) error {
	if err == nil {
		err = ErrNotReady
	}
	var zero T
	return h.settle(StateFailed, zero, err)
}

func (h *Handle[T]) settle(state State, v T, err error) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.State() != StatePending {
		return fmt.Errorf("asset %s: %w", h.name, ErrAlreadySettled)
	}
	h.value = v
	h.err = err
	// Published last so readers that observe the new state also observe the value.
	h.state.Store(int32(state))
	return nil
}
