// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import "github.com/quadgl/gpu/internal/gl"

// glState mirrors the context state the Factory changes, so redundant
// driver calls can be skipped. It assumes no one else changes the
// context behind the Factory's back; see Factory.InvalidateState.
type glState struct {
	fbo       gl.Framebuffer
	renderBuf gl.Renderbuffer
	vertArray gl.VertexArray
	prog      gl.Program
	buffers   map[gl.Enum]gl.Buffer
	uniBufs   [MaxUniformBlocks]gl.Buffer
	texUnits  struct {
		active gl.Enum
		binds  [MaxSamplers]gl.Texture
	}
	caps        map[gl.Enum]bool
	cullFace    gl.Enum
	frontFace   gl.Enum
	depthFunc   gl.Enum
	polygonMode gl.Enum
	pointSize   float32
	lineWidth   float32
	viewport    [4]int
	clearColor  [4]float32
	clearDepth  float32
}

const (
	unknownName = ^uint(0)
	unknownEnum = ^gl.Enum(0)
)

// newGLState returns the state of a fresh context. The viewport is
// unknown because it depends on the window.
func newGLState() glState {
	s := glState{
		buffers:     map[gl.Enum]gl.Buffer{},
		caps:        map[gl.Enum]bool{gl.CULL_FACE: false, gl.DEPTH_TEST: false},
		cullFace:    gl.BACK,
		frontFace:   gl.CCW,
		depthFunc:   gl.LESS,
		polygonMode: gl.FILL,
		pointSize:   1,
		lineWidth:   1,
		viewport:    [4]int{-1, -1, -1, -1},
		clearDepth:  1,
	}
	s.texUnits.active = gl.TEXTURE0
	return s
}

// unknownGLState returns a state that matches no real value, forcing
// every setter to call the driver.
func unknownGLState() glState {
	s := glState{
		fbo:         gl.Framebuffer{V: unknownName},
		renderBuf:   gl.Renderbuffer{V: unknownName},
		vertArray:   gl.VertexArray{V: unknownName},
		prog:        gl.Program{V: unknownName},
		buffers:     map[gl.Enum]gl.Buffer{},
		caps:        map[gl.Enum]bool{},
		cullFace:    unknownEnum,
		frontFace:   unknownEnum,
		depthFunc:   unknownEnum,
		polygonMode: unknownEnum,
		pointSize:   -1,
		lineWidth:   -1,
		viewport:    [4]int{-1, -1, -1, -1},
		clearColor:  [4]float32{-1, -1, -1, -1},
		clearDepth:  -1,
	}
	for i := range s.uniBufs {
		s.uniBufs[i] = gl.Buffer{V: unknownName}
	}
	s.texUnits.active = unknownEnum
	for i := range s.texUnits.binds {
		s.texUnits.binds[i] = gl.Texture{V: unknownName}
	}
	return s
}

func (s *glState) bindFramebuffer(d Driver, fbo gl.Framebuffer) {
	if fbo != s.fbo {
		d.BindFramebuffer(gl.FRAMEBUFFER, fbo)
		s.fbo = fbo
	}
}

func (s *glState) bindRenderbuffer(d Driver, r gl.Renderbuffer) {
	if r != s.renderBuf {
		d.BindRenderbuffer(gl.RENDERBUFFER, r)
		s.renderBuf = r
	}
}

func (s *glState) bindVertexArray(d Driver, a gl.VertexArray) {
	if a != s.vertArray {
		d.BindVertexArray(a)
		s.vertArray = a
		// The element array binding is vertex array state.
		delete(s.buffers, gl.ELEMENT_ARRAY_BUFFER)
	}
}

func (s *glState) useProgram(d Driver, p gl.Program) {
	if p != s.prog {
		d.UseProgram(p)
		s.prog = p
	}
}

func (s *glState) bindBuffer(d Driver, target gl.Enum, buf gl.Buffer) {
	if cur, ok := s.buffers[target]; ok && cur == buf {
		return
	}
	d.BindBuffer(target, buf)
	s.buffers[target] = buf
}

func (s *glState) bindBufferBase(d Driver, idx int, buf gl.Buffer) {
	if buf == s.uniBufs[idx] {
		return
	}
	d.BindBufferBase(gl.UNIFORM_BUFFER, idx, buf)
	s.uniBufs[idx] = buf
	// glBindBufferBase also binds the generic target.
	s.buffers[gl.UNIFORM_BUFFER] = buf
}

func (s *glState) activeTexture(d Driver, unit gl.Enum) {
	if unit != s.texUnits.active {
		d.ActiveTexture(unit)
		s.texUnits.active = unit
	}
}

func (s *glState) bindTexture(d Driver, unit int, target gl.Enum, t gl.Texture) {
	s.activeTexture(d, gl.TEXTURE0+gl.Enum(unit))
	if t != s.texUnits.binds[unit] {
		d.BindTexture(target, t)
		s.texUnits.binds[unit] = t
	}
}

func (s *glState) set(d Driver, target gl.Enum, enable bool) {
	if cur, ok := s.caps[target]; ok && cur == enable {
		return
	}
	if enable {
		d.Enable(target)
	} else {
		d.Disable(target)
	}
	s.caps[target] = enable
}

func (s *glState) setCullFace(d Driver, mode gl.Enum) {
	if mode != s.cullFace {
		d.CullFace(mode)
		s.cullFace = mode
	}
}

func (s *glState) setFrontFace(d Driver, mode gl.Enum) {
	if mode != s.frontFace {
		d.FrontFace(mode)
		s.frontFace = mode
	}
}

func (s *glState) setDepthFunc(d Driver, fn gl.Enum) {
	if fn != s.depthFunc {
		d.DepthFunc(fn)
		s.depthFunc = fn
	}
}

func (s *glState) setPolygonMode(d Driver, mode gl.Enum) {
	if mode != s.polygonMode {
		d.PolygonMode(gl.FRONT_AND_BACK, mode)
		s.polygonMode = mode
	}
}

func (s *glState) setPointSize(d Driver, size float32) {
	if size != s.pointSize {
		d.PointSize(size)
		s.pointSize = size
	}
}

func (s *glState) setLineWidth(d Driver, width float32) {
	if width != s.lineWidth {
		d.LineWidth(width)
		s.lineWidth = width
	}
}

func (s *glState) setViewport(d Driver, x, y, width, height int) {
	view := [4]int{x, y, width, height}
	if view != s.viewport {
		d.Viewport(x, y, width, height)
		s.viewport = view
	}
}

func (s *glState) setClearColor(d Driver, c [4]float32) {
	if c != s.clearColor {
		d.ClearColor(c[0], c[1], c[2], c[3])
		s.clearColor = c
	}
}

func (s *glState) setClearDepth(d Driver, depth float32) {
	if depth != s.clearDepth {
		d.ClearDepth(depth)
		s.clearDepth = depth
	}
}

func (s *glState) deleteBuffer(d Driver, b gl.Buffer) {
	d.DeleteBuffer(b)
	for target, cur := range s.buffers {
		if cur == b {
			s.buffers[target] = gl.Buffer{}
		}
	}
	for i, cur := range s.uniBufs {
		if cur == b {
			s.uniBufs[i] = gl.Buffer{}
		}
	}
}

func (s *glState) deleteTexture(d Driver, t gl.Texture) {
	d.DeleteTexture(t)
	for i, cur := range s.texUnits.binds {
		if cur == t {
			s.texUnits.binds[i] = gl.Texture{}
		}
	}
}

func (s *glState) deleteRenderbuffer(d Driver, r gl.Renderbuffer) {
	d.DeleteRenderbuffer(r)
	if r == s.renderBuf {
		s.renderBuf = gl.Renderbuffer{}
	}
}

func (s *glState) deleteVertexArray(d Driver, a gl.VertexArray) {
	d.DeleteVertexArray(a)
	if a == s.vertArray {
		s.vertArray = gl.VertexArray{}
		delete(s.buffers, gl.ELEMENT_ARRAY_BUFFER)
	}
}

func (s *glState) deleteProgram(d Driver, p gl.Program) {
	d.DeleteProgram(p)
	if p == s.prog {
		s.prog = gl.Program{}
	}
}

func (s *glState) deleteFramebuffer(d Driver, fbo gl.Framebuffer) {
	d.DeleteFramebuffer(fbo)
	if fbo == s.fbo {
		s.fbo = gl.Framebuffer{}
	}
}
