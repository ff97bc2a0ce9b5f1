package kprintf

import "math"

// powersOf10 scales the fractional part of a double to the requested
// precision (§3 "Power-of-ten table"). Index 18 is the largest precision
// this engine accepts; the converter clamps precision to maxPow10Exp
// before it ever indexes past the table's end.
var powersOf10 [19]float64

func init() {
	p := 1.0
	for i := range powersOf10 {
		powersOf10[i] = p
		p *= 10
	}
}

// floatSplit is the intermediate object for double conversion (§3): the
// rounded integer and fractional parts at a chosen precision.
type floatSplit struct {
	intPart int64
	fracInt uint64
}

// splitValue performs the integer/fractional split and rounding described
// in §4.5: a small ULP-scale bias nudges ties away from exact-.5 rounding
// noise, then round-half-up with carry into the integer part.
func splitValue(value float64, precision int) floatSplit {
	const ulpBias = 5e-15

	biased := value + ulpBias
	intPart := int64(biased)
	fracDouble := (biased - float64(intPart)) * powersOf10[precision]
	fracInt := int64(fracDouble)
	diff := fracDouble - float64(fracInt)

	switch {
	case diff > 0.5:
		fracInt++
	case diff == 0.5:
		if fracInt == 0 {
			intPart++
		} else {
			fracInt++
		}
	}

	limit := int64(powersOf10[precision])
	if fracInt >= limit {
		fracInt -= limit
		intPart++
	}

	return floatSplit{intPart: intPart, fracInt: uint64(fracInt)}
}

// normalizeExponent scales mag into [1, 10) and returns the exponent that
// undoes the scaling (§4.5 "Exponent determination").
func normalizeExponent(mag float64) (float64, int) {
	if mag == 0 {
		return 0, 0
	}

	exp := 0
	for mag < 1 {
		mag *= 10
		exp--
	}
	for mag >= 10 {
		mag /= 10
		exp++
	}
	return mag, exp
}

// writeUintDigits writes the base-10 digits of v into buf (most significant
// first) and returns how many it wrote. v == 0 writes a single '0'. buf must
// have room for at least 20 bytes; it is supplied by the caller's stack
// frame rather than a shared package buffer, so that buffered and
// direct-print sessions on different goroutines never share mutable state
// (see DESIGN.md).
func writeUintDigits(buf []byte, v uint64) int {
	if v == 0 {
		buf[0] = '0'
		return 1
	}

	var tmp [20]byte
	n := 0
	for v > 0 {
		tmp[n] = byte(v%10) + '0'
		n++
		v /= 10
	}
	for i := 0; i < n; i++ {
		buf[i] = tmp[n-1-i]
	}
	return n
}

// writeFracDigits zero-pads v's base-10 digits to exactly width characters.
func writeFracDigits(buf []byte, v uint64, width int) {
	for i := width - 1; i >= 0; i-- {
		buf[i] = byte(v%10) + '0'
		v /= 10
	}
}

// trimTrailingZeros returns the prefix length of buf[:n] with trailing '0'
// bytes removed; it is how %g computes its "useful decimal digits" (§GLOSSARY).
func trimTrailingZeros(buf []byte, n int) int {
	for n > 0 && buf[n-1] == '0' {
		n--
	}
	return n
}

// maxPow10Exp returns the largest precision the power-of-ten table
// supports for the session's instance, per the long-long-arithmetic
// feature toggle (§6 "Configuration options").
func (s *session) maxPow10Exp() int {
	if s.features&FeatureLongLong != 0 {
		return 18
	}
	return 9
}

// convertFloat implements the floating-point converter (C5, §4.5) driving
// %f/%F, %e/%E and %g/%G.
func (s *session) convertFloat(v interface{}) bool {
	st := &s.state

	var f float64
	switch t := v.(type) {
	case float32:
		f = float64(t)
	case float64:
		f = t
	default:
		s.emitBytes(errWrongArgType)
		return false
	}

	prec := 6
	if st.precisionGiven {
		prec = st.precision
	}
	if st.verb == 'g' && st.precisionGiven && prec == 0 {
		prec = 1
	}
	if max := s.maxPow10Exp(); prec > max {
		prec = max
	}

	if math.IsNaN(f) {
		s.emitWord("nan", "NAN")
		return true
	}

	if f < -math.MaxFloat64 {
		s.emitString("-")
		s.emitWord("inf", "INF")
		return true
	}
	if f > math.MaxFloat64 {
		if st.plus {
			s.emitString("+")
		}
		s.emitWord("inf", "INF")
		return true
	}

	if s.features&FeatureEngineering == 0 {
		limit := powersOf10[s.maxPow10Exp()]
		if f > limit || f < -limit {
			if f < 0 {
				s.emitString("-")
			} else if st.plus {
				s.emitString("+")
			}
			s.emitWord("inf", "INF")
			return true
		}
	}

	st.isNegative = math.Signbit(f)
	mag := math.Abs(f)

	switch st.verb {
	case 'f':
		s.emitFloatDigits(mag, prec, false, nil)
	case 'e':
		mant, exp := normalizeExponent(mag)
		s.emitFloatDigits(mant, prec, false, &exp)
	case 'g':
		mant, exp := normalizeExponent(mag)
		p := prec
		if exp >= -4 && exp < p {
			fixedPrec := p - exp - 1
			if fixedPrec < 0 {
				fixedPrec = 0
			}
			s.emitFloatDigits(mag, fixedPrec, true, nil)
		} else {
			expPrec := p - 1
			if expPrec < 0 {
				expPrec = 0
			}
			s.emitFloatDigits(mant, expPrec, true, &exp)
		}
	}
	return true
}

// emitWord writes the NaN/infinity token in the case selected by the
// upper_case flag.
func (s *session) emitWord(lower, upper string) {
	if s.state.upperCase {
		s.emitString(upper)
	} else {
		s.emitString(lower)
	}
}

// emitFloatDigits drives steps 1-10 of §4.5's digit emission algorithm: it
// splits value at precision, optionally trims trailing zeros (the %g
// case), computes the total content width for C3, and streams the result
// through the sink. exp is nil for %f and non-nil (pointing at the decimal
// exponent) for %e and %g's exponential branch.
func (s *session) emitFloatDigits(value float64, precision int, trim bool, exp *int) {
	st := &s.state
	split := splitValue(value, precision)

	var intBuf [20]byte
	intDigits := writeUintDigits(intBuf[:], uint64(split.intPart))

	var fracBuf [18]byte
	if precision > 0 {
		writeFracDigits(fracBuf[:precision], split.fracInt, precision)
	}

	effPrecision := precision
	if trim {
		effPrecision = trimTrailingZeros(fracBuf[:precision], precision)
	}

	st.isZero = split.intPart == 0 && split.fracInt == 0

	contentWidth := intDigits
	if effPrecision > 0 {
		contentWidth += 1 + effPrecision
	}

	var expDigitBuf [3]byte
	expDigitCount := 0
	expSign := byte('+')
	if exp != nil {
		e := *exp
		if e < 0 {
			expSign = '-'
			e = -e
		}
		expDigitCount = 2
		if e >= 100 {
			expDigitCount = 3
		}
		writeFracDigits(expDigitBuf[:expDigitCount], uint64(e), expDigitCount)
		contentWidth += 2 + expDigitCount
	}

	preEmitted := s.padPre(contentWidth)

	s.emitBytes(intBuf[:intDigits])
	if effPrecision > 0 {
		s.emit('.')
		s.emitBytes(fracBuf[:effPrecision])
	}
	if exp != nil {
		if st.upperCase {
			s.emit('E')
		} else {
			s.emit('e')
		}
		s.emit(expSign)
		s.emitBytes(expDigitBuf[:expDigitCount])
	}

	s.padPost(contentWidth, preEmitted)
}
