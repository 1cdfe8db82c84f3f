// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"fmt"

	"github.com/quadgl/gpu/internal/gl"
)

const (
	// MaxUniformBlocks is the number of uniform block binding slots.
	MaxUniformBlocks = 4
	// MaxSamplers is the number of texture sampler slots.
	MaxSamplers = 4
)

// ShaderKind is the pipeline stage of a shader object.
type ShaderKind uint8

const (
	VertexShader ShaderKind = iota
	FragmentShader
)

func (k ShaderKind) glEnum() gl.Enum {
	switch k {
	case VertexShader:
		return gl.VERTEX_SHADER
	case FragmentShader:
		return gl.FRAGMENT_SHADER
	default:
		panic("gpu: invalid shader kind")
	}
}

func (k ShaderKind) String() string {
	switch k {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	default:
		return "invalid"
	}
}

// ShaderObject is an owner of a compiled shader.
type ShaderObject struct {
	own  *owner
	obj  gl.Shader
	kind ShaderKind
}

func newShaderObject(obj gl.Shader, q *releaseQueue, kind ShaderKind) *ShaderObject {
	own := newOwner(newDestructor(obj.V, q))
	return track(&ShaderObject{own: own, obj: obj, kind: kind}, own)
}

func (s *ShaderObject) ID() uint         { return s.obj.V }
func (s *ShaderObject) Kind() ShaderKind { return s.kind }

func (s *ShaderObject) Clone() *ShaderObject {
	s.own.mustLive()
	c := *s
	c.own = newOwner(s.own.d)
	return track(&c, c.own)
}

func (s *ShaderObject) Release() { s.own.release() }

func (s *ShaderObject) String() string {
	return fmt.Sprintf("ShaderObject(%d, %s)", s.obj.V, s.kind)
}

// Binding names a uniform block or sampler a program must provide.
// The zero Binding is unused.
type Binding struct {
	name string
}

// Required returns a Binding for the named shader variable.
func Required(name string) Binding {
	return Binding{name: name}
}

func (b Binding) Required() bool { return b.name != "" }
func (b Binding) Name() string   { return b.name }

// Interface maps uniform block and sampler slots to shader names.
type Interface struct {
	UniformBlocks [MaxUniformBlocks]Binding
	Samplers      [MaxSamplers]Binding
}

// Program is an owner of a linked program.
type Program struct {
	own      *owner
	obj      gl.Program
	samplers [MaxSamplers]gl.Uniform
}

func newProgram(obj gl.Program, q *releaseQueue, samplers [MaxSamplers]gl.Uniform) *Program {
	own := newOwner(newDestructor(obj.V, q))
	return track(&Program{own: own, obj: obj, samplers: samplers}, own)
}

func (p *Program) ID() uint { return p.obj.V }

// SamplerLocation returns the uniform location bound to a sampler
// slot, or -1 for an unused slot.
func (p *Program) SamplerLocation(slot int) int { return p.samplers[slot].V }

func (p *Program) Clone() *Program {
	p.own.mustLive()
	c := *p
	c.own = newOwner(p.own.d)
	return track(&c, c.own)
}

func (p *Program) Release() { p.own.release() }

func (p *Program) Equal(o *Program) bool { return p.obj == o.obj }

func (p *Program) String() string {
	return fmt.Sprintf("Program(%d)", p.obj.V)
}

// Invocation is a program together with the resources bound to its
// interface slots for one draw call. Nil entries are left unbound.
type Invocation struct {
	Program  *Program
	Uniforms [MaxUniformBlocks]*Buffer
	Samplers [MaxSamplers]*Sampler
}
