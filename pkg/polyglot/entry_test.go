package polyglot

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEntry_EncodeDecodeRoundTrip(t *testing.T) {
	want := Entry{Key: 0x0123456789abcdef, Move: 0x1a2b, Weight: 0x4321, Learn: 0xdeadbeef}
	buf := want.Encode(nil)
	if len(buf) != EntrySize {
		t.Fatalf("len(Encode()) = %d, want %d", len(buf), EntrySize)
	}
	got := Decode(buf)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Decode(Encode(e)) mismatch (-want +got):\n%s", diff)
	}
}

func TestEntry_Less(t *testing.T) {
	cases := []struct {
		name string
		a, b Entry
		want bool
	}{
		{"lower key first", Entry{Key: 1}, Entry{Key: 2}, true},
		{"higher key second", Entry{Key: 2}, Entry{Key: 1}, false},
		{"same key, higher weight first", Entry{Key: 1, Weight: 5}, Entry{Key: 1, Weight: 2}, true},
		{"same key and weight, higher move first", Entry{Key: 1, Weight: 5, Move: 9}, Entry{Key: 1, Weight: 5, Move: 3}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.a.Less(c.b); got != c.want {
				t.Errorf("%+v.Less(%+v) = %v, want %v", c.a, c.b, got, c.want)
			}
		})
	}
}

func TestEntry_ResultAndGameOffset(t *testing.T) {
	e := Entry{Learn: (uint32(2) << 30) | (12345 & 0x3FFFFFFF)}
	if e.Result() != 2 {
		t.Errorf("Result() = %d, want 2", e.Result())
	}
	if got, want := e.GameOffset(), uint64(12345)<<3; got != want {
		t.Errorf("GameOffset() = %d, want %d", got, want)
	}
}
