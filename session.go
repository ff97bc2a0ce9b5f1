package kprintf

import "kprintf/sink"

// session is the per-call working record (§3 "Session record"): the sink,
// the format template, the argument list, the current format state, the
// running accepted-byte count, and the cancellation latch.
type session struct {
	snk      sink.Sink
	buffered bool // true when snk is a bounded-buffer writer (C2)
	features Features

	format string
	args   []interface{}
	argIdx int

	state     formatState
	length    int
	cancelled bool
}

// nextArg returns the next positional argument and advances the cursor. The
// second result is false once the argument list is exhausted.
func (s *session) nextArg() (interface{}, bool) {
	if s.argIdx >= len(s.args) {
		return nil, false
	}
	a := s.args[s.argIdx]
	s.argIdx++
	return a, true
}

// hasMoreArgs reports whether any positional arguments remain unconsumed.
func (s *session) hasMoreArgs() bool {
	return s.argIdx < len(s.args)
}

// emit writes a single content byte through the sink (C1). Once the
// session is cancelled every call is a no-op. For a direct-print session a
// sink rejection latches the cancel flag; for a buffered session rejections
// do not cancel the session because the bounded-buffer writer (C2) must
// keep counting its notional length past saturation.
func (s *session) emit(b byte) {
	if s.cancelled {
		return
	}

	ok := s.snk.WriteByte(b)
	if s.buffered {
		s.length++
		return
	}

	if !ok {
		s.cancelled = true
		return
	}
	s.length++
}

// emitBytes streams p one byte at a time through emit, honouring
// cancellation exactly as a single emit call would.
func (s *session) emitBytes(p []byte) {
	for _, b := range p {
		if s.cancelled {
			return
		}
		s.emit(b)
	}
}

// emitString streams str one byte at a time.
func (s *session) emitString(str string) {
	for i := 0; i < len(str); i++ {
		if s.cancelled {
			return
		}
		s.emit(str[i])
	}
}

// terminate emits the trailing null byte that snprintf-style callers rely
// on (§4.6). A buffered session already maintains its own trailing null
// after every accepted byte (C2), so there is nothing left to do; for a
// direct-print session the sink is required to tolerate (and ignore) the
// extra byte, which is not counted against the returned length.
func (s *session) terminate() {
	if s.buffered || s.cancelled {
		return
	}
	s.snk.WriteByte(0)
}
