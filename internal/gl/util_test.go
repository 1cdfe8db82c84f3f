// SPDX-License-Identifier: Unlicense OR MIT

package gl

import (
	"testing"
)

func TestGoString(t *testing.T) {
	tests := [][2]string{
		{"Hello\x00", "Hello"},
		{"\x00", ""},
		{"log\x00garbage", "log"},
		{"unterminated", "unterminated"},
	}
	for _, test := range tests {
		got := GoString([]byte(test[0]))
		if exp := test[1]; exp != got {
			t.Errorf("expected %q got %q", exp, got)
		}
	}
}

func TestParseGLVersion(t *testing.T) {
	tests := []struct {
		in  string
		exp [2]int
	}{
		{"3.3.0 NVIDIA 535.54.03", [2]int{3, 3}},
		{"4.6 (Core Profile) Mesa 23.2.1", [2]int{4, 6}},
		{"OpenGL ES 3.2 Mesa 23.2.1", [2]int{3, 2}},
	}
	for _, test := range tests {
		got, err := ParseGLVersion(test.in)
		if err != nil {
			t.Errorf("%q: %v", test.in, err)
			continue
		}
		if got != test.exp {
			t.Errorf("%q: expected %v got %v", test.in, test.exp, got)
		}
	}
	if _, err := ParseGLVersion("garbage"); err == nil {
		t.Error("expected an error for an unparseable version")
	}
}

func TestErrorString(t *testing.T) {
	if got := ErrorString(INVALID_OPERATION); got != "GL_INVALID_OPERATION" {
		t.Errorf("got %q", got)
	}
	if got := ErrorString(0x1234); got != "0x1234" {
		t.Errorf("got %q", got)
	}
}
