package kprintf

// Sentinel diagnostic strings the directive interpreter (C6, §4.6) emits
// in place of a directive's normal output when it cannot honour the
// request. They are emitted literally into the sink rather than returned
// as Go errors, matching a freestanding engine that has no error-return
// channel of its own (§5).
var (
	errMissingArg   = []byte("%!(MISSING)")
	errWrongArgType = []byte("%!(WRONGTYPE)")
	errNoVerb       = []byte("%!(NOVERB)")
	errExtraArg     = []byte("%!(EXTRA)")
)

// runFormat drives the directive interpreter over the whole format
// template: literal runs are copied straight to the sink, and each '%'
// opens a directive that is scanned and dispatched in turn (§4.6).
func (s *session) runFormat() {
	i := 0
	for i < len(s.format) {
		c := s.format[i]
		if c != '%' {
			s.emit(c)
			i++
			continue
		}

		i++
		if i >= len(s.format) {
			s.emitBytes(errNoVerb)
			break
		}
		if s.format[i] == '%' {
			s.emit('%')
			i++
			continue
		}

		i = s.scanDirective(i)
		if s.cancelled {
			return
		}
	}

	if s.hasMoreArgs() {
		s.emitBytes(errExtraArg)
	}
}

// scanDirective parses one directive's grammar (flags, width, precision,
// length, type) starting just past the '%', dispatches to the matching
// converter, and returns the index just past the consumed type letter.
func (s *session) scanDirective(i int) int {
	st := &s.state
	st.reset()
	st.base = 10

	// flags
	for i < len(s.format) {
		switch s.format[i] {
		case '-':
			st.leftAlign = true
		case '+':
			st.plus = true
		case ' ':
			st.space = true
		case '0':
			st.zero = true
		case '#':
			st.alt = true
		case '\'':
			st.thousands = true
		default:
			goto flagsDone
		}
		i++
	}
flagsDone:

	// width
	if i < len(s.format) && s.format[i] == '*' {
		st.width = s.nextIntArg()
		if st.width < 0 {
			st.leftAlign = true
			st.width = -st.width
		}
		i++
	} else {
		w, ni := scanUint(s.format, i)
		st.width = w
		i = ni
	}

	// precision
	if i < len(s.format) && s.format[i] == '.' {
		i++
		st.precisionGiven = true
		if i < len(s.format) && s.format[i] == '*' {
			st.precision = s.nextIntArg()
			if st.precision < 0 {
				st.precisionGiven = false
				st.precision = 0
			}
			i++
		} else {
			p, ni := scanUint(s.format, i)
			st.precision = p
			i = ni
		}
	}

	// length modifiers
lengthLoop:
	for i < len(s.format) {
		switch s.format[i] {
		case 'h':
			st.charShortLen++
			i++
		case 'l':
			st.longLongLen++
			i++
		case 'z':
			st.sizeTLen = true
			i++
		case 'j':
			st.uintmaxTLen = true
			i++
		case 't', 'L':
			// ptrdiff_t and long-double length modifiers: consumed for
			// grammar compatibility, but Go's static argument types
			// already carry the width these select in the C grammar.
			i++
		default:
			break lengthLoop
		}
	}

	if i >= len(s.format) {
		s.emitBytes(errNoVerb)
		return i
	}

	verb := s.format[i]
	i++
	s.dispatch(verb)
	return i
}

// nextIntArg consumes one argument as an int, for '*' width/precision. A
// missing or mistyped argument reports through the sink and yields 0.
func (s *session) nextIntArg() int {
	a, ok := s.nextArg()
	if !ok {
		s.emitBytes(errMissingArg)
		return 0
	}
	switch t := a.(type) {
	case int:
		return t
	case int32:
		return int(t)
	case int64:
		return int(t)
	default:
		s.emitBytes(errWrongArgType)
		return 0
	}
}

// scanUint reads a decimal literal starting at i, returning 0 if none is
// present.
func scanUint(format string, i int) (int, int) {
	n := 0
	start := i
	for i < len(format) && format[i] >= '0' && format[i] <= '9' {
		n = n*10 + int(format[i]-'0')
		i++
	}
	if i == start {
		return 0, i
	}
	return n, i
}

// dispatch routes a parsed directive to its converter by type letter
// (§4.6). Verbs for a feature the instance has disabled fall through to
// the unrecognised-type path and are emitted verbatim.
func (s *session) dispatch(verb byte) {
	st := &s.state

	switch verb {
	case 'd', 'i':
		if s.features&FeatureInteger == 0 {
			s.emitUnrecognised(verb)
			return
		}
		st.verb = verb
		st.base = 10
		s.convertSignedArg()
	case 'u':
		if s.features&FeatureInteger == 0 {
			s.emitUnrecognised(verb)
			return
		}
		st.verb = verb
		st.base = 10
		s.convertUnsignedArg()
	case 'o':
		if s.features&FeatureInteger == 0 {
			s.emitUnrecognised(verb)
			return
		}
		st.verb = verb
		st.base = 8
		s.convertUnsignedArg()
	case 'x', 'X':
		if s.features&FeatureInteger == 0 {
			s.emitUnrecognised(verb)
			return
		}
		st.verb = lowerVerb(verb)
		st.base = 16
		st.upperCase = verb == 'X'
		s.convertUnsignedArg()
	case 'b', 'B':
		if s.features&FeatureInteger == 0 {
			s.emitUnrecognised(verb)
			return
		}
		st.verb = lowerVerb(verb)
		st.base = 2
		st.upperCase = verb == 'B'
		s.convertUnsignedArg()
	case 'f', 'F', 'e', 'E', 'g', 'G':
		if s.features&FeatureFloat == 0 {
			s.emitUnrecognised(verb)
			return
		}
		if lowerVerb(verb) != 'f' && s.features&FeatureEngineering == 0 {
			s.emitUnrecognised(verb)
			return
		}
		st.verb = lowerVerb(verb)
		st.upperCase = isUpperVerb(verb)
		s.convertFloatArg()
	case 'p':
		if s.features&FeaturePointer == 0 {
			s.emitUnrecognised(verb)
			return
		}
		st.verb = verb
		s.convertPointerArg()
	case 'c':
		s.convertCharArg()
	case 's':
		if s.features&FeatureString == 0 {
			s.emitUnrecognised(verb)
			return
		}
		s.convertStringArg()
	case 'k', 'K':
		if s.features&FeatureByteArray == 0 {
			s.emitUnrecognised(verb)
			return
		}
		st.upperCase = verb == 'K'
		s.convertByteArrayArg()
	case 'n':
		s.convertCountArg()
	default:
		s.emitUnrecognised(verb)
	}
}

func lowerVerb(v byte) byte {
	if v >= 'A' && v <= 'Z' {
		return v - 'A' + 'a'
	}
	return v
}

func isUpperVerb(v byte) bool {
	return v >= 'A' && v <= 'Z'
}

// emitUnrecognised implements the deliberate simplification in §4.6: an
// unsupported or unknown type letter is emitted as-is, with the '%' that
// introduced it simply discarded.
func (s *session) emitUnrecognised(verb byte) {
	s.emit(verb)
}

func (s *session) convertSignedArg() {
	a, ok := s.nextArg()
	if !ok {
		s.emitBytes(errMissingArg)
		return
	}
	s.convertInt(a)
}

func (s *session) convertUnsignedArg() {
	a, ok := s.nextArg()
	if !ok {
		s.emitBytes(errMissingArg)
		return
	}
	s.convertUint(a)
}

func (s *session) convertFloatArg() {
	a, ok := s.nextArg()
	if !ok {
		s.emitBytes(errMissingArg)
		return
	}
	s.convertFloat(a)
}

func (s *session) convertPointerArg() {
	a, ok := s.nextArg()
	if !ok {
		s.emitBytes(errMissingArg)
		return
	}
	s.convertPointer(a)
}

// convertCharArg implements %c (§4.6): the argument is a single byte or
// rune, width/padding still apply but there is no sign or alt-form prefix.
func (s *session) convertCharArg() {
	a, ok := s.nextArg()
	if !ok {
		s.emitBytes(errMissingArg)
		return
	}

	var b byte
	switch t := a.(type) {
	case byte:
		b = t
	case rune:
		b = byte(t)
	case int:
		b = byte(t)
	default:
		s.emitBytes(errWrongArgType)
		return
	}

	s.state.plus, s.state.space = false, false
	preEmitted := s.padPre(1)
	s.emit(b)
	s.padPost(1, preEmitted)
}

// convertStringArg implements %s (§4.6): precision truncates, width pads,
// neither sign nor alt-form prefix apply.
func (s *session) convertStringArg() {
	a, ok := s.nextArg()
	if !ok {
		s.emitBytes(errMissingArg)
		return
	}

	str, ok := a.(string)
	if !ok {
		s.emitBytes(errWrongArgType)
		return
	}

	st := &s.state
	if st.precisionGiven && st.precision < len(str) {
		str = str[:st.precision]
	}
	st.plus, st.space = false, false

	preEmitted := s.padPre(len(str))
	s.emitString(str)
	s.padPost(len(str), preEmitted)
}

// convertByteArrayArg implements %k/%K (§4.6): the argument is a []byte and
// width (not content width in the C3 sense) is the number of bytes to
// emit as two hex nibbles each, uppercase for K. The space flag separates
// bytes with a single space and never trails the last one. There is no
// C3 padding phase for this directive.
func (s *session) convertByteArrayArg() {
	a, ok := s.nextArg()
	if !ok {
		s.emitBytes(errMissingArg)
		return
	}

	p, ok := a.([]byte)
	if !ok {
		s.emitBytes(errWrongArgType)
		return
	}

	st := &s.state
	const hexLower = "0123456789abcdef"
	const hexUpper = "0123456789ABCDEF"
	table := hexLower
	if st.upperCase {
		table = hexUpper
	}

	count := st.width
	if count > len(p) {
		count = len(p)
	}

	for i := 0; i < count; i++ {
		if i > 0 && st.space {
			s.emit(' ')
		}
		b := p[i]
		s.emit(table[b>>4])
		s.emit(table[b&0x0f])
	}
}

// convertCountArg implements %n (§4.6): it writes the running accepted
// length into the destination the caller passed, without emitting any
// output bytes itself.
func (s *session) convertCountArg() {
	a, ok := s.nextArg()
	if !ok {
		s.emitBytes(errMissingArg)
		return
	}

	switch p := a.(type) {
	case *int:
		*p = s.length
	case *int32:
		*p = int32(s.length)
	case *int64:
		*p = int64(s.length)
	default:
		s.emitBytes(errWrongArgType)
	}
}
