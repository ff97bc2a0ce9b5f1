package osmutex

import (
	"runtime"
	"sync"
	"testing"
	"time"
)

func TestMutex(t *testing.T) {
	defer func(orig func()) { yieldFn = orig }(yieldFn)
	yieldFn = runtime.Gosched

	var (
		m          Mutex
		wg         sync.WaitGroup
		numWorkers = 10
	)

	if !m.Create() {
		t.Fatal("expected Create to succeed")
	}

	if !m.IsValid() {
		t.Fatal("expected freshly created mutex to be valid")
	}

	if !m.Wait() {
		t.Fatal("expected Wait to acquire the uncontended lock")
	}

	if m.TryWait() {
		t.Error("expected TryWait to fail while the lock is held")
	}

	wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go func() {
			defer wg.Done()
			if !m.Wait() {
				t.Error("expected Wait to succeed")
				return
			}
			m.Release()
		}()
	}

	<-time.After(50 * time.Millisecond)
	m.Release()
	wg.Wait()
}

func TestMutexInvalid(t *testing.T) {
	var m Mutex

	if m.IsValid() {
		t.Fatal("expected zero-value mutex to be invalid")
	}

	if m.Wait() {
		t.Error("expected Wait on an invalid mutex to fail")
	}

	if m.Release() {
		t.Error("expected Release on an invalid mutex to fail")
	}
}
