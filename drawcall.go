// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import "github.com/quadgl/gpu/internal/gl"

// Primitive is the topology of a draw call.
type Primitive uint8

const (
	Triangles Primitive = iota
	TriangleStrip
	TriangleFan
	Points
	Lines
	LineStrip
)

// DrawKind selects the draw dispatch.
type DrawKind uint8

const (
	Arrays DrawKind = iota
	Elements
	ArraysInstanced
	ElementsInstanced
)

// DrawCall describes one draw dispatch. For Arrays, Offset is the first
// vertex. For Elements, Offset is the first index, counted in elements
// of the vertex array's index accessor.
type DrawCall struct {
	Kind      DrawKind
	Primitive Primitive
	Offset    int
	Count     int
	Instances int
}

// ClearOp selects what Factory.Clear resets. Nil fields are left
// untouched.
type ClearOp struct {
	Color *[4]float32
	Depth *float32
}

func (p Primitive) glEnum() gl.Enum {
	switch p {
	case Triangles:
		return gl.TRIANGLES
	case TriangleStrip:
		return gl.TRIANGLE_STRIP
	case TriangleFan:
		return gl.TRIANGLE_FAN
	case Points:
		return gl.POINTS
	case Lines:
		return gl.LINES
	case LineStrip:
		return gl.LINE_STRIP
	default:
		panic("gpu: invalid primitive")
	}
}

func (k DrawKind) String() string {
	switch k {
	case Arrays:
		return "arrays"
	case Elements:
		return "elements"
	case ArraysInstanced:
		return "instanced arrays"
	case ElementsInstanced:
		return "instanced elements"
	default:
		return "invalid"
	}
}
