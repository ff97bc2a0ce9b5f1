package fatal

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"kprintf/kerr"
)

func TestReport(t *testing.T) {
	capture := func(buf *strings.Builder) Printf {
		return func(format string, args ...interface{}) int {
			s := fmt.Sprintf(format, args...)
			buf.WriteString(s)
			return len(s)
		}
	}

	cases := []struct {
		name  string
		cause interface{}
		exp   string
	}{
		{
			"kerr.Error",
			&kerr.Error{Module: "test", Message: "boom"},
			"\n-----------------------------------\n[test] unrecoverable error: boom\n*** fatal: halted ***\n-----------------------------------\n",
		},
		{
			"error",
			errors.New("go error"),
			"\n-----------------------------------\n[rt] unrecoverable error: go error\n*** fatal: halted ***\n-----------------------------------\n",
		},
		{
			"string",
			"string error",
			"\n-----------------------------------\n[rt] unrecoverable error: string error\n*** fatal: halted ***\n-----------------------------------\n",
		},
		{
			"nil",
			nil,
			"\n-----------------------------------\n*** fatal: halted ***\n-----------------------------------\n",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var buf strings.Builder
			var halted bool

			Report(capture(&buf), c.cause, func() { halted = true })

			if got := buf.String(); got != c.exp {
				t.Fatalf("expected:\n%q\ngot:\n%q", c.exp, got)
			}
			if !halted {
				t.Fatal("expected halt hook to be called")
			}
		})
	}

	t.Run("nil halt hook", func(t *testing.T) {
		var buf strings.Builder
		Report(capture(&buf), "oops", nil)
		if buf.Len() == 0 {
			t.Fatal("expected output even without a halt hook")
		}
	})
}
