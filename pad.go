package kprintf

// altPrefix returns the alternate-form prefix bytes for the current format
// state (the '#' flag), honouring the rule that the prefix is suppressed
// entirely for a zero value (§4.3, boundary scenario 8).
func altPrefix(st *formatState) []byte {
	if !st.alt || st.isZero {
		return nil
	}

	switch st.base {
	case 8:
		return []byte{'0'}
	case 16:
		if st.upperCase {
			return []byte{'0', 'X'}
		}
		return []byte{'0', 'x'}
	case 2:
		if st.upperCase {
			return []byte{'0', 'B'}
		}
		return []byte{'0', 'b'}
	}
	return nil
}

// signChar picks the sign byte to emit ahead of the value, or 0 when none
// applies. plus dominates space (§4.3 tie-breaks).
func signChar(st *formatState) byte {
	switch {
	case st.isNegative:
		return '-'
	case st.plus:
		return '+'
	case st.space:
		return ' '
	default:
		return 0
	}
}

// padPre runs the pre-phase of the padding emitter (C3, §4.3): it writes
// the sign, the alternate-form prefix, and any leading fill required before
// the value's content bytes, which the caller writes immediately afterwards.
// It returns the number of bytes it wrote, needed by padPost to compute the
// remaining width for left-aligned fields.
func (s *session) padPre(contentWidth int) int {
	st := &s.state

	sc := signChar(st)
	signLen := 0
	if sc != 0 {
		signLen = 1
	}

	prefix := altPrefix(st)
	effWidth := st.width - signLen - len(prefix)
	fill := effWidth - contentWidth
	if fill < 0 {
		fill = 0
	}

	emitted := 0
	writeSignAndPrefix := func() {
		if sc != 0 {
			s.emit(sc)
			emitted++
		}
		if len(prefix) > 0 {
			s.emitBytes(prefix)
			emitted += len(prefix)
		}
	}

	switch {
	case st.zero && !st.leftAlign:
		writeSignAndPrefix()
		for i := 0; i < fill; i++ {
			s.emit('0')
			emitted++
		}
	case st.leftAlign:
		writeSignAndPrefix()
	default:
		for i := 0; i < fill; i++ {
			s.emit(' ')
			emitted++
		}
		writeSignAndPrefix()
	}

	return emitted
}

// padPost runs the post-phase (§4.3): for left-aligned fields it pads with
// trailing spaces until the requested width is reached. It is a no-op
// otherwise.
func (s *session) padPost(contentWidth, preEmitted int) {
	if !s.state.leftAlign {
		return
	}

	total := preEmitted + contentWidth
	for total < s.state.width {
		s.emit(' ')
		total++
	}
}
