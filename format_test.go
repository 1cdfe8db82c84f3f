// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quadgl/gpu/internal/gl"
)

func TestFormatProperties(t *testing.T) {
	tests := []struct {
		typ  ElementType
		bits int
		norm bool
		gl   gl.Enum
	}{
		{F32, 32, false, gl.FLOAT},
		{I8, 8, false, gl.BYTE},
		{I8Norm, 8, true, gl.BYTE},
		{I16, 16, false, gl.SHORT},
		{I16Norm, 16, true, gl.SHORT},
		{I32, 32, false, gl.INT},
		{U8, 8, false, gl.UNSIGNED_BYTE},
		{U8Norm, 8, true, gl.UNSIGNED_BYTE},
		{U16, 16, false, gl.UNSIGNED_SHORT},
		{U16Norm, 16, true, gl.UNSIGNED_SHORT},
		{U32, 32, false, gl.UNSIGNED_INT},
	}
	for _, test := range tests {
		for size := 1; size <= 4; size++ {
			f := NewFormat(test.typ, size)
			if f.Size() != size || f.Bits() != test.bits || f.Norm() != test.norm {
				t.Errorf("%v: got size %d bits %d norm %v", f, f.Size(), f.Bits(), f.Norm())
			}
			if got, exp := f.ElementSize(), test.bits/8*size; got != exp {
				t.Errorf("%v: got element size %d, expected %d", f, got, exp)
			}
			if f.dataType() != test.gl {
				t.Errorf("%v: got data type 0x%x, expected 0x%x", f, f.dataType(), test.gl)
			}
		}
	}
}

func TestFloatFormat(t *testing.T) {
	f := Float(32, 3)
	assert.Equal(t, 3, f.Size())
	assert.False(t, f.Norm())
	assert.Equal(t, 32, f.Bits())
	assert.Equal(t, F32, f.Type())
	assert.Panics(t, func() { Float(16, 3) })
}

func TestFormatInvalidSize(t *testing.T) {
	assert.Panics(t, func() { NewFormat(U8, 0) })
	assert.Panics(t, func() { NewFormat(U8, 5) })
	assert.Panics(t, func() { Format{}.Size() })
}
