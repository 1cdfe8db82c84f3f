// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"errors"
	"image"

	"github.com/quadgl/gpu/internal/gl"
)

var errNoIndices = errors.New("gpu: elements draw call on a vertex array without indices")

// Draw renders va into fb with the program and resources of inv.
// Instanced draw kinds panic with an *UnimplementedError. The program
// and vertex array are unbound afterwards.
func (f *Factory) Draw(fb *Framebuffer, state *State, va *VertexArray, call DrawCall, inv *Invocation) {
	f.checkThread()
	fb.own.mustLive()
	va.own.mustLive()
	inv.Program.own.mustLive()
	switch call.Kind {
	case Arrays:
	case Elements:
		if va.indices == nil {
			panic(errNoIndices)
		}
	default:
		panic(&UnimplementedError{Mode: call.Kind})
	}

	f.state.bindFramebuffer(f.funcs, fb.obj)
	f.check("glBindFramebuffer")
	vp := state.Viewport
	if vp.Empty() {
		w, h := fb.Dimensions()
		vp = image.Rect(0, 0, w, h)
	}
	f.state.setViewport(f.funcs, vp.Min.X, vp.Min.Y, vp.Dx(), vp.Dy())
	f.check("glViewport")

	f.applyState(state)

	f.state.bindVertexArray(f.funcs, va.obj)
	f.check("glBindVertexArray")
	f.state.useProgram(f.funcs, inv.Program.obj)
	f.check("glUseProgram")
	for slot, buf := range inv.Uniforms {
		if buf == nil {
			continue
		}
		buf.own.mustLive()
		f.state.bindBufferBase(f.funcs, slot, buf.obj)
		f.check("glBindBufferBase")
	}
	for slot, s := range inv.Samplers {
		if s == nil {
			continue
		}
		s.own.mustLive()
		f.bindSampler(slot, s)
	}

	mode := call.Primitive.glEnum()
	switch call.Kind {
	case Arrays:
		f.funcs.DrawArrays(mode, call.Offset, call.Count)
		f.check("glDrawArrays")
	case Elements:
		idx := va.indices
		off := idx.offset + call.Offset*idx.format.ElementSize()
		f.funcs.DrawElements(mode, call.Count, idx.format.dataType(), off)
		f.check("glDrawElements")
	}

	f.state.useProgram(f.funcs, gl.Program{})
	f.check("glUseProgram")
	f.state.bindVertexArray(f.funcs, gl.VertexArray{})
	f.check("glBindVertexArray")
}

func (f *Factory) applyState(state *State) {
	if face, ok := state.Culling.face(); ok {
		f.state.set(f.funcs, gl.CULL_FACE, true)
		f.check("glEnable")
		f.state.setCullFace(f.funcs, face)
		f.check("glCullFace")
		f.state.setFrontFace(f.funcs, state.FrontFace.glEnum())
		f.check("glFrontFace")
	} else {
		f.state.set(f.funcs, gl.CULL_FACE, false)
		f.check("glDisable")
	}
	if fn, ok := state.DepthTest.fn(); ok {
		f.state.set(f.funcs, gl.DEPTH_TEST, true)
		f.check("glEnable")
		f.state.setDepthFunc(f.funcs, fn)
		f.check("glDepthFunc")
	} else {
		f.state.set(f.funcs, gl.DEPTH_TEST, false)
		f.check("glDisable")
	}
	pm := state.PolygonMode
	f.state.setPolygonMode(f.funcs, pm.Mode.glEnum())
	f.check("glPolygonMode")
	switch pm.Mode {
	case RasterPoint:
		f.state.setPointSize(f.funcs, pm.Size)
		f.check("glPointSize")
	case RasterLine:
		f.state.setLineWidth(f.funcs, pm.Size)
		f.check("glLineWidth")
	}
}

func (f *Factory) bindSampler(unit int, s *Sampler) {
	f.state.bindTexture(f.funcs, unit, s.target, s.tex)
	f.check("glBindTexture")
	p := s.params
	f.funcs.TexParameteri(s.target, gl.TEXTURE_MAG_FILTER, int(p.MagFilter.glEnum()))
	f.funcs.TexParameteri(s.target, gl.TEXTURE_MIN_FILTER, int(p.MinFilter.glEnum()))
	f.funcs.TexParameteri(s.target, gl.TEXTURE_WRAP_S, int(p.WrapS.glEnum()))
	f.funcs.TexParameteri(s.target, gl.TEXTURE_WRAP_T, int(p.WrapT.glEnum()))
	f.check("glTexParameteri")
}
