// Package fatal provides a crash-report helper adapted from gopher-os's
// kfmt.Panic: format whatever description of the failure is available
// through a Printf-shaped function, then invoke a caller-supplied halt
// hook. The CPU/process halt primitive itself is outside this module's
// scope (spec §1); callers wire in whatever makes sense for their target
// (an infinite loop on bare metal, os.Exit on a hosted binary, or nothing
// at all in a test).
package fatal

import "kprintf/kerr"

var errUnknownCause = &kerr.Error{Module: "rt", Message: "unknown cause"}

// Printf is the shape of the formatting entry point Report calls into; it
// matches kprintf.Instance.Printf so callers can pass that method directly.
type Printf func(format string, args ...interface{}) int

// Report prints a banner describing cause through printf and then calls
// halt, if non-nil. cause may be a *kerr.Error, a string, an error, or nil.
// Report never returns if halt does not return.
func Report(printf Printf, cause interface{}, halt func()) {
	var err *kerr.Error

	switch t := cause.(type) {
	case nil:
	case *kerr.Error:
		err = t
	case string:
		err = &kerr.Error{Module: "rt", Message: t}
	case error:
		err = &kerr.Error{Module: "rt", Message: t.Error()}
	default:
		err = errUnknownCause
	}

	printf("\n-----------------------------------\n")
	if err != nil {
		printf("[%s] unrecoverable error: %s\n", err.Module, err.Message)
	}
	printf("*** fatal: halted ***")
	printf("\n-----------------------------------\n")

	if halt != nil {
		halt()
	}
}
