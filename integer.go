package kprintf

import "unsafe"

// convertInt implements the integer converter (C4, §4.4) for the signed
// directives (%d, %i): a negative argument contributes a '-' sign and the
// magnitude is converted in the unsigned domain.
func (s *session) convertInt(v interface{}) bool {
	var uval uint64
	switch t := v.(type) {
	case int:
		uval = toUnsigned(s, int64(t))
	case int8:
		uval = toUnsigned(s, int64(t))
	case int16:
		uval = toUnsigned(s, int64(t))
	case int32:
		uval = toUnsigned(s, int64(t))
	case int64:
		uval = toUnsigned(s, t)
	case uint:
		uval = uint64(t)
	case uint8:
		uval = uint64(t)
	case uint16:
		uval = uint64(t)
	case uint32:
		uval = uint64(t)
	case uint64:
		uval = t
	case uintptr:
		uval = uint64(t)
	default:
		s.emitBytes(errWrongArgType)
		return false
	}

	return s.emitUnsignedDigits(uval)
}

// convertUint implements the integer converter for the unsigned directives
// (%u, %o, %x, %X, %b, %B): a negative Go int contributes its raw two's
// complement bit pattern, never a sign.
func (s *session) convertUint(v interface{}) bool {
	var uval uint64
	switch t := v.(type) {
	case int:
		uval = uint64(t)
	case int8:
		uval = uint64(uint8(t))
	case int16:
		uval = uint64(uint16(t))
	case int32:
		uval = uint64(uint32(t))
	case int64:
		uval = uint64(t)
	case uint:
		uval = uint64(t)
	case uint8:
		uval = uint64(t)
	case uint16:
		uval = uint64(t)
	case uint32:
		uval = uint64(t)
	case uint64:
		uval = t
	case uintptr:
		uval = uint64(t)
	default:
		s.emitBytes(errWrongArgType)
		return false
	}

	return s.emitUnsignedDigits(uval)
}

// emitUnsignedDigits renders uval in the session's current base, applying
// the C3 padding emitter around the digit run.
func (s *session) emitUnsignedDigits(uval uint64) bool {
	st := &s.state
	st.isZero = uval == 0

	var digits [64]byte
	n := 0
	if uval == 0 {
		digits[0] = '0'
		n = 1
	} else {
		base := uint64(st.base)
		for uval > 0 {
			d := uval % base
			switch {
			case d < 10:
				digits[n] = byte(d) + '0'
			case st.upperCase:
				digits[n] = byte(d-10) + 'A'
			default:
				digits[n] = byte(d-10) + 'a'
			}
			n++
			uval /= base
		}
	}

	preEmitted := s.padPre(n)
	for i := n - 1; i >= 0; i-- {
		s.emit(digits[i])
	}
	s.padPost(n, preEmitted)

	return true
}

// toUnsigned records the sign on the session's format state and returns the
// magnitude of sval widened to uint64. Negating math.MinInt64 directly would
// overflow int64, so the negation happens in two steps that each stay in
// range.
func toUnsigned(s *session, sval int64) uint64 {
	if sval >= 0 {
		return uint64(sval)
	}
	s.state.isNegative = true
	return uint64(-(sval+1)) + 1
}

// convertPointer implements the %p directive (§4.6): base 16, zero-padded to
// the width of a machine pointer in nibbles, lower case, zero fill.
func (s *session) convertPointer(v interface{}) bool {
	var uval uint64
	switch t := v.(type) {
	case uintptr:
		uval = uint64(t)
	default:
		s.emitBytes(errWrongArgType)
		return false
	}

	st := &s.state
	st.base = 16
	st.upperCase = false
	st.zero = true
	st.width = pointerNibbles

	var digits [16]byte
	n := 0
	if uval == 0 {
		digits[0] = '0'
		n = 1
	} else {
		for uval > 0 {
			d := uval % 16
			if d < 10 {
				digits[n] = byte(d) + '0'
			} else {
				digits[n] = byte(d-10) + 'a'
			}
			n++
			uval /= 16
		}
	}
	st.isZero = n == 1 && digits[0] == '0'

	preEmitted := s.padPre(n)
	for i := n - 1; i >= 0; i-- {
		s.emit(digits[i])
	}
	s.padPost(n, preEmitted)
	return true
}

// pointerNibbles is the width, in hex nibbles, of a machine pointer.
var pointerNibbles = int(unsafe.Sizeof(uintptr(0))) * 2
