// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"image"

	"github.com/quadgl/gpu/internal/gl"
)

// State is the fixed-function configuration applied before a draw
// call. The zero State culls back faces of counter-clockwise
// triangles, passes fragments with less depth, fills polygons and
// covers the whole framebuffer.
type State struct {
	FrontFace   FrontFace
	Culling     Culling
	DepthTest   DepthTest
	PolygonMode PolygonMode
	// Viewport is the rendered region. The empty rectangle means the
	// whole framebuffer.
	Viewport image.Rectangle
}

type FrontFace uint8

const (
	CounterClockwise FrontFace = iota
	Clockwise
)

type Culling uint8

const (
	CullBack Culling = iota
	CullNone
	CullFront
	CullAll
)

// DepthTest selects the depth comparison. DepthOff disables depth
// testing.
type DepthTest uint8

const (
	DepthLess DepthTest = iota
	DepthOff
	DepthNever
	DepthLessEqual
	DepthEqual
	DepthGreater
	DepthAlways
)

type RasterMode uint8

const (
	RasterFill RasterMode = iota
	RasterPoint
	RasterLine
)

// PolygonMode selects polygon rasterization. Size is the point size
// or line width.
type PolygonMode struct {
	Mode RasterMode
	Size float32
}

// Fill rasterizes polygon interiors.
func Fill() PolygonMode { return PolygonMode{} }

// Point rasterizes polygon vertices as points of the given size.
func Point(size float32) PolygonMode { return PolygonMode{Mode: RasterPoint, Size: size} }

// Line rasterizes polygon edges as lines of the given width.
func Line(width float32) PolygonMode { return PolygonMode{Mode: RasterLine, Size: width} }

func (f FrontFace) glEnum() gl.Enum {
	if f == Clockwise {
		return gl.CW
	}
	return gl.CCW
}

// face returns the culled face, or false when culling is disabled.
func (c Culling) face() (gl.Enum, bool) {
	switch c {
	case CullNone:
		return 0, false
	case CullFront:
		return gl.FRONT, true
	case CullBack:
		return gl.BACK, true
	case CullAll:
		return gl.FRONT_AND_BACK, true
	default:
		panic("gpu: invalid culling mode")
	}
}

// fn returns the depth function, or false when testing is disabled.
func (d DepthTest) fn() (gl.Enum, bool) {
	switch d {
	case DepthOff:
		return 0, false
	case DepthNever:
		return gl.NEVER, true
	case DepthLess:
		return gl.LESS, true
	case DepthLessEqual:
		return gl.LEQUAL, true
	case DepthEqual:
		return gl.EQUAL, true
	case DepthGreater:
		return gl.GREATER, true
	case DepthAlways:
		return gl.ALWAYS, true
	default:
		panic("gpu: invalid depth test")
	}
}

func (m RasterMode) glEnum() gl.Enum {
	switch m {
	case RasterFill:
		return gl.FILL
	case RasterPoint:
		return gl.POINT
	case RasterLine:
		return gl.LINE
	default:
		panic("gpu: invalid raster mode")
	}
}
