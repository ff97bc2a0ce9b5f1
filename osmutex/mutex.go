// Package osmutex implements the OS mutex contract required by the
// concurrency wrapper (C7): create, is_valid, wait (blocking acquire) and
// release. The implementation is a spinlock, adapted from the scheduler-free
// spinlock used by freestanding kernels that cannot rely on a real mutex
// syscall until task switching exists.
package osmutex

import "sync/atomic"

// yieldFn is substituted by tests to avoid burning CPU while waiting for
// contended locks to clear.
var yieldFn func()

// Mutex implements a spinlock satisfying the OS mutex contract: Create,
// IsValid, Wait and Release, each reporting success via a boolean result.
// The zero value is not valid; use Create to obtain a usable Mutex.
type Mutex struct {
	state uint32
	valid bool
}

// Create initializes m and reports true. Create always succeeds for the
// spinlock-backed implementation; it exists so that other OS mutex
// implementations backed by a real syscall can fail here instead of in Wait.
func (m *Mutex) Create() bool {
	atomic.StoreUint32(&m.state, 0)
	m.valid = true
	return true
}

// IsValid reports whether m was successfully created and has not been
// invalidated.
func (m *Mutex) IsValid() bool {
	return m.valid
}

// Wait blocks until the lock can be acquired by the caller. Wait is
// unbounded: a mutex that is never released blocks the caller forever.
// Calling Wait on an invalid mutex reports false immediately.
func (m *Mutex) Wait() bool {
	if !m.valid {
		return false
	}

	attempts := uint32(0)
	for !atomic.CompareAndSwapUint32(&m.state, 0, 1) {
		attempts++
		if attempts > 4096 && yieldFn != nil {
			yieldFn()
			attempts = 0
		}
	}
	return true
}

// TryWait attempts to acquire the lock without blocking and reports whether
// it succeeded.
func (m *Mutex) TryWait() bool {
	return m.valid && atomic.CompareAndSwapUint32(&m.state, 0, 1)
}

// Release relinquishes a held lock, allowing other callers to acquire it.
// Calling Release while the lock is free has no effect.
func (m *Mutex) Release() bool {
	if !m.valid {
		return false
	}
	atomic.StoreUint32(&m.state, 0)
	return true
}
