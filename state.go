package kprintf

// formatState is the per-directive working record. It is reset to its zero
// value on every '%' the directive interpreter encounters; no field carries
// residue from one directive into the next.
type formatState struct {
	leftAlign      bool
	plus           bool
	space          bool
	zero           bool
	thousands      bool
	alt            bool
	precisionGiven bool
	upperCase      bool
	isNegative     bool
	isZero         bool
	sizeTLen       bool
	uintmaxTLen    bool

	// longLongLen and charShortLen are two-bit counters: 0 = unset,
	// 1 = single modifier (h / l), 2 = doubled modifier (hh / ll). Go's
	// argument values already carry their own width, so these only
	// matter for validating/consuming the printf grammar; the integer
	// and float converters dispatch on the argument's actual type.
	longLongLen  int
	charShortLen int

	width     int
	precision int
	base      int
	verb      byte // directive letter, normalised to lower case
}

func (s *formatState) reset() {
	*s = formatState{}
}
