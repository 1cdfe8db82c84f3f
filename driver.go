// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import "github.com/quadgl/gpu/internal/gl"

// Driver is the set of OpenGL 3.3 core entry points the Factory calls.
// Implementations are bound to one context and are not safe for
// concurrent use. Object creation functions return the zero object on
// failure.
type Driver interface {
	GetError() gl.Enum
	GetString(pname gl.Enum) string
	PixelStorei(pname gl.Enum, param int)

	CreateBuffer() gl.Buffer
	DeleteBuffer(b gl.Buffer)
	BindBuffer(target gl.Enum, b gl.Buffer)
	BindBufferBase(target gl.Enum, index int, b gl.Buffer)
	BufferData(target gl.Enum, size int, usage gl.Enum, data []byte)
	BufferSubData(target gl.Enum, offset int, data []byte)

	CreateVertexArray() gl.VertexArray
	DeleteVertexArray(a gl.VertexArray)
	BindVertexArray(a gl.VertexArray)
	EnableVertexAttribArray(a gl.Attrib)
	VertexAttribPointer(dst gl.Attrib, size int, ty gl.Enum, normalized bool, stride, offset int)

	CreateShader(ty gl.Enum) gl.Shader
	DeleteShader(s gl.Shader)
	ShaderSource(s gl.Shader, src string)
	CompileShader(s gl.Shader)
	GetShaderi(s gl.Shader, pname gl.Enum) int
	GetShaderInfoLog(s gl.Shader) string

	CreateProgram() gl.Program
	DeleteProgram(p gl.Program)
	AttachShader(p gl.Program, s gl.Shader)
	LinkProgram(p gl.Program)
	GetProgrami(p gl.Program, pname gl.Enum) int
	GetProgramInfoLog(p gl.Program) string
	UseProgram(p gl.Program)
	GetUniformBlockIndex(p gl.Program, name string) uint
	UniformBlockBinding(p gl.Program, uniformBlockIndex uint, uniformBlockBinding uint)
	GetUniformLocation(p gl.Program, name string) gl.Uniform
	Uniform1i(dst gl.Uniform, v int)

	CreateTexture() gl.Texture
	DeleteTexture(t gl.Texture)
	ActiveTexture(unit gl.Enum)
	BindTexture(target gl.Enum, t gl.Texture)
	TexImage2D(target gl.Enum, level int, internalFormat gl.Enum, width, height int, format, ty gl.Enum, data []byte)
	GetTexImage(target gl.Enum, level int, format, ty gl.Enum, dst []byte)
	TexParameteri(target, pname gl.Enum, param int)
	GenerateMipmap(target gl.Enum)

	CreateRenderbuffer() gl.Renderbuffer
	DeleteRenderbuffer(r gl.Renderbuffer)
	BindRenderbuffer(target gl.Enum, r gl.Renderbuffer)
	RenderbufferStorage(target, internalFormat gl.Enum, width, height int)
	RenderbufferStorageMultisample(target gl.Enum, samples int, internalFormat gl.Enum, width, height int)

	CreateFramebuffer() gl.Framebuffer
	DeleteFramebuffer(f gl.Framebuffer)
	BindFramebuffer(target gl.Enum, f gl.Framebuffer)
	FramebufferTexture2D(target, attachment, texTarget gl.Enum, t gl.Texture, level int)
	FramebufferRenderbuffer(target, attachment, renderbufferTarget gl.Enum, r gl.Renderbuffer)
	CheckFramebufferStatus(target gl.Enum) gl.Enum
	DrawBuffers(bufs []gl.Enum)
	ReadPixels(x, y, width, height int, format, ty gl.Enum, data []byte)

	Viewport(x, y, width, height int)
	Enable(capability gl.Enum)
	Disable(capability gl.Enum)
	CullFace(mode gl.Enum)
	FrontFace(mode gl.Enum)
	DepthFunc(fn gl.Enum)
	PolygonMode(face, mode gl.Enum)
	PointSize(size float32)
	LineWidth(width float32)
	ClearColor(red, green, blue, alpha float32)
	ClearDepth(d float32)
	Clear(mask gl.Enum)

	DrawArrays(mode gl.Enum, first, count int)
	DrawElements(mode gl.Enum, count int, ty gl.Enum, offset int)
}
