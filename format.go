// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"fmt"

	"github.com/quadgl/gpu/internal/gl"
)

// ElementType is the scalar type of an accessor component.
type ElementType uint8

const (
	F32 ElementType = iota
	I8
	I8Norm
	I16
	I16Norm
	I32
	U8
	U8Norm
	U16
	U16Norm
	U32
)

// Format is an element type together with a component count in 1..4.
type Format struct {
	typ  ElementType
	size uint8
}

// NewFormat returns the format of size components of type typ. It
// panics if size is outside 1..4.
func NewFormat(typ ElementType, size int) Format {
	checkFormatSize(size)
	return Format{typ: typ, size: uint8(size)}
}

// Float returns a floating point format. Only 32 bit floats are
// supported.
func Float(bits, size int) Format {
	if bits != 32 {
		panic(fmt.Errorf("gpu: unsupported float width %d", bits))
	}
	return NewFormat(F32, size)
}

func checkFormatSize(size int) {
	if size < 1 || size > 4 {
		panic(fmt.Errorf("gpu: invalid format size %d", size))
	}
}

func (f Format) Type() ElementType { return f.typ }

// Size returns the component count. It panics for a Format not made
// by NewFormat or Float.
func (f Format) Size() int {
	checkFormatSize(int(f.size))
	return int(f.size)
}

// Norm reports whether integer components are normalized to [0,1] or
// [-1,1] when read by a shader.
func (f Format) Norm() bool {
	switch f.typ {
	case I8Norm, I16Norm, U8Norm, U16Norm:
		return true
	default:
		return false
	}
}

// Bits returns the width of one component.
func (f Format) Bits() int {
	return f.typ.Bits()
}

// Bits returns the width of one value of type t.
func (t ElementType) Bits() int {
	switch t {
	case I8, I8Norm, U8, U8Norm:
		return 8
	case I16, I16Norm, U16, U16Norm:
		return 16
	case F32, I32, U32:
		return 32
	default:
		panic("gpu: invalid element type")
	}
}

// ElementSize returns the byte size of one element.
func (f Format) ElementSize() int {
	return f.Bits() / 8 * f.Size()
}

func (f Format) dataType() gl.Enum {
	return f.typ.dataType()
}

func (t ElementType) dataType() gl.Enum {
	switch t {
	case F32:
		return gl.FLOAT
	case I8, I8Norm:
		return gl.BYTE
	case I16, I16Norm:
		return gl.SHORT
	case I32:
		return gl.INT
	case U8, U8Norm:
		return gl.UNSIGNED_BYTE
	case U16, U16Norm:
		return gl.UNSIGNED_SHORT
	case U32:
		return gl.UNSIGNED_INT
	default:
		panic("gpu: invalid element type")
	}
}

func (f Format) String() string {
	return fmt.Sprintf("%sx%d", f.typ, f.size)
}

func (t ElementType) String() string {
	switch t {
	case F32:
		return "f32"
	case I8:
		return "i8"
	case I8Norm:
		return "i8norm"
	case I16:
		return "i16"
	case I16Norm:
		return "i16norm"
	case I32:
		return "i32"
	case U8:
		return "u8"
	case U8Norm:
		return "u8norm"
	case U16:
		return "u16"
	case U16Norm:
		return "u16norm"
	case U32:
		return "u32"
	default:
		return "invalid"
	}
}
