package ringsink

import (
	"bytes"
	"io"
	"testing"
)

func TestBuffer(t *testing.T) {
	expStr := "the big brown fox jumped over the lazy dog"

	t.Run("read/write", func(t *testing.T) {
		var b Buffer
		for _, ch := range []byte(expStr) {
			if !b.WriteByte(ch) {
				t.Fatal("expected WriteByte to always report true")
			}
		}

		if got := readByteByByte(&b); got != expStr {
			t.Fatalf("expected to read %q; got %q", expStr, got)
		}
	})

	t.Run("write moves read pointer once full", func(t *testing.T) {
		var b Buffer
		b.wIndex = size - 1
		b.rIndex = 0
		b.WriteByte('!')

		if exp := 1; b.rIndex != exp {
			t.Fatalf("expected write to push rIndex to %d; got %d", exp, b.rIndex)
		}
	})

	t.Run("wraps around", func(t *testing.T) {
		var b Buffer
		b.wIndex = size - 2
		b.rIndex = size - 2

		n, err := b.Write([]byte(expStr))
		if err != nil {
			t.Fatal(err)
		}
		if n != len(expStr) {
			t.Fatalf("expected to write %d bytes; wrote %d", len(expStr), n)
		}

		if got := readByteByByte(&b); got != expStr {
			t.Fatalf("expected to read %q; got %q", expStr, got)
		}
	})

	t.Run("CopyTo", func(t *testing.T) {
		var b Buffer
		b.Write([]byte(expStr))

		var out bytes.Buffer
		if _, err := b.CopyTo(&out); err != nil {
			t.Fatal(err)
		}

		if got := out.String(); got != expStr {
			t.Fatalf("expected %q; got %q", expStr, got)
		}
	})
}

func readByteByByte(r io.Reader) string {
	var buf bytes.Buffer
	b := make([]byte, 1)
	for {
		_, err := r.Read(b)
		if err == io.EOF {
			break
		}
		buf.Write(b)
	}
	return buf.String()
}
