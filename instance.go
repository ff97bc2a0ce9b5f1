// Package kprintf implements a freestanding, allocation-free formatted
// output engine for resource-constrained environments: a printf/snprintf
// replacement built from independent sink, padding, integer, float and
// directive-interpreter components (C1-C7).
package kprintf

import (
	"kprintf/buffer"
	"kprintf/kerr"
	"kprintf/osmutex"
	"kprintf/sink"
)

// Instance is one configured printf engine: a direct-print sink, the
// feature set controlling which directive families are enabled, and the
// mutex serializing concurrent direct-print calls (§6 "External
// interfaces"). The zero value is not usable; call Init first.
type Instance struct {
	snk      sink.Sink
	features Features
	lock     osmutex.Mutex
}

// DefaultInstance is the package-level engine used by the free functions
// Printf, Vprintf and Protect/Unprotect, mirroring the convenience
// top-level functions most printf-family APIs expose alongside their
// instantiable type.
var DefaultInstance Instance

func init() {
	if _, ok := DefaultInstance.Init(sink.Discard, DefaultFeatures); !ok {
		panic("kprintf: default instance failed to initialise")
	}
}

// Init configures inst with snk as its direct-print sink and the given
// feature set, and arms its mutex. Passing a nil snk installs sink.Discard,
// matching the "initially a no-op" default sink (§3). It reports failure
// through the (*kerr.Error, bool) shape the rest of this module uses for
// errors that must not allocate: the spinlock-backed osmutex.Mutex used
// here never fails to create, but a real syscall-backed OS mutex might, and
// callers should not have to special-case which implementation is behind
// the interface.
func (inst *Instance) Init(snk sink.Sink, features Features) (*kerr.Error, bool) {
	if snk == nil {
		snk = sink.Discard
	}
	inst.snk = snk
	inst.features = features

	if !inst.lock.Create() {
		return &kerr.Error{Module: "init", Message: "failed to create instance mutex"}, false
	}
	return nil, true
}

// SetSink replaces the direct-print sink, for example once a console
// driver becomes available after boot.
func (inst *Instance) SetSink(snk sink.Sink) {
	if snk == nil {
		snk = sink.Discard
	}
	inst.snk = snk
}

// Protect acquires the instance's mutex (C7), serializing concurrent
// direct-print calls against the same sink. It blocks until the lock is
// free.
func (inst *Instance) Protect() bool {
	if !inst.lock.IsValid() {
		return false
	}
	return inst.lock.Wait()
}

// Unprotect releases the lock acquired by Protect.
func (inst *Instance) Unprotect() bool {
	return inst.lock.Release()
}

// Printf formats format against args and writes the result directly to
// inst's sink, serialized by inst's mutex. It returns the number of bytes
// the sink accepted.
func (inst *Instance) Printf(format string, args ...interface{}) int {
	return inst.Vprintf(format, args)
}

// Vprintf is Printf taking its arguments as a slice, for callers building
// the argument list programmatically (the printf family's v-variant).
func (inst *Instance) Vprintf(format string, args []interface{}) int {
	inst.Protect()
	defer inst.Unprotect()

	s := &session{
		snk:      inst.snk,
		features: inst.features,
		format:   format,
		args:     args,
	}
	s.runFormat()
	s.terminate()
	return s.length
}

// Snprintf formats format against args into buf, a fixed-size caller-owned
// buffer (C2). It returns the notional output length: the number of bytes
// that would have been written had buf been unbounded, so callers can
// detect truncation by comparing the result against len(buf).
func (inst *Instance) Snprintf(buf []byte, format string, args ...interface{}) int {
	return inst.Vsnprintf(buf, format, args)
}

// Vsnprintf is Snprintf taking its arguments as a slice.
func (inst *Instance) Vsnprintf(buf []byte, format string, args []interface{}) int {
	w := buffer.New(buf)

	s := &session{
		snk:      w,
		buffered: true,
		features: inst.features,
		format:   format,
		args:     args,
	}
	s.runFormat()
	s.terminate()
	return s.length
}

// Printf formats format against args and writes the result through
// DefaultInstance's sink.
func Printf(format string, args ...interface{}) int {
	return DefaultInstance.Printf(format, args...)
}

// Vprintf is Printf taking its arguments as a slice.
func Vprintf(format string, args []interface{}) int {
	return DefaultInstance.Vprintf(format, args)
}

// Snprintf formats format against args into buf using DefaultInstance.
func Snprintf(buf []byte, format string, args ...interface{}) int {
	return DefaultInstance.Snprintf(buf, format, args...)
}

// Vsnprintf is Snprintf taking its arguments as a slice.
func Vsnprintf(buf []byte, format string, args []interface{}) int {
	return DefaultInstance.Vsnprintf(buf, format, args)
}

// Protect acquires DefaultInstance's mutex.
func Protect() bool {
	return DefaultInstance.Protect()
}

// Unprotect releases DefaultInstance's mutex.
func Unprotect() bool {
	return DefaultInstance.Unprotect()
}

// SetSink replaces DefaultInstance's direct-print sink.
func SetSink(snk sink.Sink) {
	DefaultInstance.SetSink(snk)
}
