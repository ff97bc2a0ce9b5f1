package prefixsink

import "testing"

type recordingSink struct {
	out     []byte
	failAt  int
	written int
}

func (s *recordingSink) WriteByte(b byte) bool {
	if s.failAt > 0 && s.written == s.failAt {
		return false
	}
	s.out = append(s.out, b)
	s.written++
	return true
}

func TestWriter(t *testing.T) {
	t.Run("single line", func(t *testing.T) {
		rs := &recordingSink{}
		w := &Writer{Sink: rs, Prefix: []byte("[tag] ")}

		for _, b := range []byte("hello") {
			if !w.WriteByte(b) {
				t.Fatal("unexpected rejection")
			}
		}

		if got, exp := string(rs.out), "[tag] hello"; got != exp {
			t.Fatalf("expected %q; got %q", exp, got)
		}
	})

	t.Run("multi line", func(t *testing.T) {
		rs := &recordingSink{}
		w := &Writer{Sink: rs, Prefix: []byte(">> ")}

		for _, b := range []byte("a\nb\nc") {
			w.WriteByte(b)
		}

		if got, exp := string(rs.out), ">> a\n>> b\n>> c"; got != exp {
			t.Fatalf("expected %q; got %q", exp, got)
		}
	})

	t.Run("rejection propagates", func(t *testing.T) {
		rs := &recordingSink{failAt: 2}
		w := &Writer{Sink: rs, Prefix: nil}

		ok := true
		for _, b := range []byte("abcd") {
			ok = w.WriteByte(b)
			if !ok {
				break
			}
		}

		if ok {
			t.Fatal("expected rejection to propagate")
		}
	})
}
