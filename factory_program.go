// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"strings"

	"github.com/quadgl/gpu/internal/gl"
)

// Shader compiles source as a shader of the given kind. Compilation
// failure panics with a *CompileError carrying the driver log.
func (f *Factory) Shader(kind ShaderKind, source string) *ShaderObject {
	f.Collect()
	sh := f.funcs.CreateShader(kind.glEnum())
	f.check("glCreateShader")
	f.funcs.ShaderSource(sh, source)
	f.check("glShaderSource")
	f.funcs.CompileShader(sh)
	f.check("glCompileShader")
	if f.funcs.GetShaderi(sh, gl.COMPILE_STATUS) == gl.FALSE {
		log := f.funcs.GetShaderInfoLog(sh)
		f.funcs.DeleteShader(sh)
		panic(&CompileError{Kind: kind, Log: strings.TrimSpace(log)})
	}
	Logger().Debug("gpu: compiled shader", "id", sh.V, "kind", kind)
	return newShaderObject(sh, f.queues[catShaders], kind)
}

// Program links vertex and fragment into a program and binds the
// names required by iface to their slots. Link failure panics with a
// *LinkError and a missing required name with a *BindingError.
func (f *Factory) Program(vertex, fragment *ShaderObject, iface *Interface) *Program {
	f.Collect()
	vertex.own.mustLive()
	fragment.own.mustLive()
	if vertex.kind != VertexShader || fragment.kind != FragmentShader {
		panic("gpu: program needs a vertex and a fragment shader")
	}
	prog := f.funcs.CreateProgram()
	f.check("glCreateProgram")
	f.funcs.AttachShader(prog, vertex.obj)
	f.check("glAttachShader")
	f.funcs.AttachShader(prog, fragment.obj)
	f.check("glAttachShader")
	f.funcs.LinkProgram(prog)
	f.check("glLinkProgram")
	if f.funcs.GetProgrami(prog, gl.LINK_STATUS) == gl.FALSE {
		log := f.funcs.GetProgramInfoLog(prog)
		f.funcs.DeleteProgram(prog)
		panic(&LinkError{Log: strings.TrimSpace(log)})
	}
	for slot, b := range iface.UniformBlocks {
		if !b.Required() {
			continue
		}
		idx := f.funcs.GetUniformBlockIndex(prog, b.name)
		f.check("glGetUniformBlockIndex")
		if idx == gl.INVALID_INDEX {
			f.funcs.DeleteProgram(prog)
			panic(&BindingError{Kind: "uniform block", Name: b.name})
		}
		f.funcs.UniformBlockBinding(prog, idx, uint(slot))
		f.check("glUniformBlockBinding")
	}
	var samplers [MaxSamplers]gl.Uniform
	for slot, b := range iface.Samplers {
		samplers[slot] = gl.Uniform{V: -1}
		if !b.Required() {
			continue
		}
		loc := f.funcs.GetUniformLocation(prog, b.name)
		f.check("glGetUniformLocation")
		if !loc.Valid() {
			f.funcs.DeleteProgram(prog)
			panic(&BindingError{Kind: "sampler", Name: b.name})
		}
		samplers[slot] = loc
	}
	// Point each sampler at the texture unit of its slot.
	for slot, loc := range samplers {
		if !loc.Valid() {
			continue
		}
		f.state.useProgram(f.funcs, prog)
		f.check("glUseProgram")
		f.funcs.Uniform1i(loc, slot)
		f.check("glUniform1i")
	}
	f.state.useProgram(f.funcs, gl.Program{})
	f.check("glUseProgram")
	Logger().Debug("gpu: linked program", "id", prog.V)
	return newProgram(prog, f.queues[catPrograms], samplers)
}

// QueryUniformBlockIndex returns the index of the named uniform block
// of p, or false if p has no such block.
func (f *Factory) QueryUniformBlockIndex(p *Program, name string) (uint, bool) {
	f.checkThread()
	p.own.mustLive()
	idx := f.funcs.GetUniformBlockIndex(p.obj, name)
	f.check("glGetUniformBlockIndex")
	if idx == gl.INVALID_INDEX {
		return 0, false
	}
	return idx, true
}

// QueryUniformLocation returns the location of the named uniform of p,
// or false if p has no such uniform.
func (f *Factory) QueryUniformLocation(p *Program, name string) (int, bool) {
	f.checkThread()
	p.own.mustLive()
	loc := f.funcs.GetUniformLocation(p.obj, name)
	f.check("glGetUniformLocation")
	if !loc.Valid() {
		return 0, false
	}
	return loc.V, true
}

// BindUniformBlock assigns uniform block index of p to binding slot.
func (f *Factory) BindUniformBlock(p *Program, index uint, slot int) {
	f.checkThread()
	p.own.mustLive()
	f.funcs.UniformBlockBinding(p.obj, index, uint(slot))
	f.check("glUniformBlockBinding")
}
