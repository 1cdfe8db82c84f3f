// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"fmt"

	"github.com/quadgl/gpu/internal/gl"
)

// TextureFormat is the storage format of a texture or renderbuffer.
type TextureFormat uint8

const (
	Rgba8 TextureFormat = iota
	Rgb8
	Rgb32F
	Rgba32F
	Depth24
	Depth32F
)

// PixelOrder is the component order of client pixel data.
type PixelOrder uint8

const (
	OrderRGBA PixelOrder = iota
	OrderR
	OrderRG
	OrderRGB
	OrderBGR
	OrderBGRA
)

// PixelFormat describes client pixel data passed to or read from the
// driver. Type is one of U8, U32 or F32.
type PixelFormat struct {
	Type  ElementType
	Order PixelOrder
}

// Filter is a texture sampling filter.
type Filter uint8

const (
	FilterLinear Filter = iota
	FilterNearest
	FilterNearestMipmapNearest
	FilterLinearMipmapNearest
	FilterNearestMipmapLinear
	FilterLinearMipmapLinear
)

// Wrap is a texture coordinate wrapping mode.
type Wrap uint8

const (
	WrapRepeat Wrap = iota
	WrapMirroredRepeat
	WrapClampToEdge
)

// SamplerParams are applied to a texture unit each time a Sampler is
// bound. The zero value samples linearly and repeats.
type SamplerParams struct {
	MagFilter Filter
	MinFilter Filter
	WrapS     Wrap
	WrapT     Wrap
}

// Texture2 is an owner of a two-dimensional driver texture.
type Texture2 struct {
	own    *owner
	obj    gl.Texture
	width  int
	height int
	mipmap bool
	format TextureFormat
}

func newTexture2(obj gl.Texture, q *releaseQueue, width, height int, mipmap bool, format TextureFormat) *Texture2 {
	own := newOwner(newDestructor(obj.V, q))
	return track(&Texture2{
		own:    own,
		obj:    obj,
		width:  width,
		height: height,
		mipmap: mipmap,
		format: format,
	}, own)
}

func (t *Texture2) ID() uint                        { return t.obj.V }
func (t *Texture2) Dimensions() (width, height int) { return t.width, t.height }
func (t *Texture2) Mipmap() bool                    { return t.mipmap }
func (t *Texture2) Format() TextureFormat           { return t.format }

func (t *Texture2) Clone() *Texture2 {
	t.own.mustLive()
	c := *t
	c.own = newOwner(t.own.d)
	return track(&c, c.own)
}

// Release drops this owner. Samplers made from the texture keep it
// alive.
func (t *Texture2) Release() { t.own.release() }

func (t *Texture2) Equal(o *Texture2) bool { return t.obj == o.obj }

func (t *Texture2) String() string {
	return fmt.Sprintf("Texture2(%d, %dx%d, %s)", t.obj.V, t.width, t.height, t.format)
}

// Sampler returns a Sampler for t. The Sampler shares ownership of the
// texture object.
func (t *Texture2) Sampler(p SamplerParams) *Sampler {
	t.own.mustLive()
	own := newOwner(t.own.d)
	return track(&Sampler{
		own:    own,
		tex:    t.obj,
		target: gl.TEXTURE_2D,
		params: p,
	}, own)
}

// Sampler is a texture together with its sampling parameters.
type Sampler struct {
	own    *owner
	tex    gl.Texture
	target gl.Enum
	params SamplerParams
}

// ID returns the name of the sampled texture.
func (s *Sampler) ID() uint              { return s.tex.V }
func (s *Sampler) Params() SamplerParams { return s.params }

func (s *Sampler) Clone() *Sampler {
	s.own.mustLive()
	c := *s
	c.own = newOwner(s.own.d)
	return track(&c, c.own)
}

func (s *Sampler) Release() { s.own.release() }

func (s *Sampler) String() string {
	return fmt.Sprintf("Sampler(%d, %+v)", s.tex.V, s.params)
}

func (f TextureFormat) internalFormat() gl.Enum {
	switch f {
	case Rgba8:
		return gl.RGBA8
	case Rgb8:
		return gl.RGB8
	case Rgb32F:
		return gl.RGB32F
	case Rgba32F:
		return gl.RGBA32F
	case Depth24:
		return gl.DEPTH_COMPONENT24
	case Depth32F:
		return gl.DEPTH_COMPONENT32F
	default:
		panic("gpu: invalid texture format")
	}
}

func (f TextureFormat) isDepth() bool {
	return f == Depth24 || f == Depth32F
}

// storageFormat returns a client format compatible with f, for
// allocating storage without data.
func (f TextureFormat) storageFormat() PixelFormat {
	if f.isDepth() {
		return PixelFormat{Type: F32, Order: OrderR}
	}
	return PixelFormat{Type: U8, Order: OrderRGBA}
}

func (f TextureFormat) String() string {
	switch f {
	case Rgba8:
		return "rgba8"
	case Rgb8:
		return "rgb8"
	case Rgb32F:
		return "rgb32f"
	case Rgba32F:
		return "rgba32f"
	case Depth24:
		return "depth24"
	case Depth32F:
		return "depth32f"
	default:
		return "invalid"
	}
}

func (p PixelFormat) components() int {
	switch p.Order {
	case OrderR:
		return 1
	case OrderRG:
		return 2
	case OrderRGB, OrderBGR:
		return 3
	case OrderRGBA, OrderBGRA:
		return 4
	default:
		panic("gpu: invalid pixel order")
	}
}

// BytesPerPixel returns the byte size of one pixel.
func (p PixelFormat) BytesPerPixel() int {
	return p.Type.Bits() / 8 * p.components()
}

func (p PixelFormat) dataType() gl.Enum {
	switch p.Type {
	case U8, U32, F32:
		return p.Type.dataType()
	default:
		panic(fmt.Errorf("gpu: unsupported pixel type %s", p.Type))
	}
}

// order returns the driver's format enum. R with an F32 type on a
// depth texture is translated by the caller.
func (p PixelFormat) order() gl.Enum {
	switch p.Order {
	case OrderR:
		return gl.RED
	case OrderRG:
		return gl.RG
	case OrderRGB:
		return gl.RGB
	case OrderBGR:
		return gl.BGR
	case OrderRGBA:
		return gl.RGBA
	case OrderBGRA:
		return gl.BGRA
	default:
		panic("gpu: invalid pixel order")
	}
}

func (f Filter) glEnum() gl.Enum {
	switch f {
	case FilterLinear:
		return gl.LINEAR
	case FilterNearest:
		return gl.NEAREST
	case FilterNearestMipmapNearest:
		return gl.NEAREST_MIPMAP_NEAREST
	case FilterLinearMipmapNearest:
		return gl.LINEAR_MIPMAP_NEAREST
	case FilterNearestMipmapLinear:
		return gl.NEAREST_MIPMAP_LINEAR
	case FilterLinearMipmapLinear:
		return gl.LINEAR_MIPMAP_LINEAR
	default:
		panic("gpu: invalid filter")
	}
}

func (w Wrap) glEnum() gl.Enum {
	switch w {
	case WrapRepeat:
		return gl.REPEAT
	case WrapMirroredRepeat:
		return gl.MIRRORED_REPEAT
	case WrapClampToEdge:
		return gl.CLAMP_TO_EDGE
	default:
		panic("gpu: invalid wrap mode")
	}
}
