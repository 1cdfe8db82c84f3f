// SPDX-License-Identifier: Unlicense OR MIT

// Package glcore implements the gpu driver interface over the OpenGL
// 3.3 core profile bindings of github.com/go-gl/gl.
package glcore

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/quadgl/gpu"
	igl "github.com/quadgl/gpu/internal/gl"
)

// Functions calls the entry points of the context current at Load.
type Functions struct {
	version [2]int
}

var _ gpu.Driver = (*Functions)(nil)

// Load resolves the OpenGL entry points through getProcAddr, which
// typically comes from the windowing library, and checks that the
// current context supports OpenGL 3.3.
func Load(getProcAddr func(name string) unsafe.Pointer) (*Functions, error) {
	if getProcAddr == nil {
		return nil, errors.New("glcore: nil getProcAddr")
	}
	if err := gl.InitWithProcAddrFunc(getProcAddr); err != nil {
		return nil, fmt.Errorf("glcore: %w", err)
	}
	glVer := gl.GoStr(gl.GetString(gl.VERSION))
	ver, err := igl.ParseGLVersion(glVer)
	if err != nil {
		return nil, fmt.Errorf("glcore: %w", err)
	}
	if ver[0] < 3 || ver[0] == 3 && ver[1] < 3 {
		return nil, fmt.Errorf("glcore: OpenGL 3.3 or newer required, got %s", glVer)
	}
	return &Functions{version: ver}, nil
}

// Version returns the major and minor context version.
func (f *Functions) Version() [2]int { return f.version }

func cstr(s string) (*uint8, func()) {
	if !strings.HasSuffix(s, "\x00") {
		s += "\x00"
	}
	strs, free := gl.Strs(s)
	return *strs, free
}

func ptr(data []byte) unsafe.Pointer {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Pointer(&data[0])
}

func (f *Functions) GetError() igl.Enum {
	return igl.Enum(gl.GetError())
}

func (f *Functions) GetString(pname igl.Enum) string {
	s := gl.GetString(uint32(pname))
	if s == nil {
		return ""
	}
	return gl.GoStr(s)
}

func (f *Functions) PixelStorei(pname igl.Enum, param int) {
	gl.PixelStorei(uint32(pname), int32(param))
}

func (f *Functions) CreateBuffer() igl.Buffer {
	var b uint32
	gl.GenBuffers(1, &b)
	return igl.Buffer{V: uint(b)}
}

func (f *Functions) DeleteBuffer(b igl.Buffer) {
	v := uint32(b.V)
	gl.DeleteBuffers(1, &v)
}

func (f *Functions) BindBuffer(target igl.Enum, b igl.Buffer) {
	gl.BindBuffer(uint32(target), uint32(b.V))
}

func (f *Functions) BindBufferBase(target igl.Enum, index int, b igl.Buffer) {
	gl.BindBufferBase(uint32(target), uint32(index), uint32(b.V))
}

func (f *Functions) BufferData(target igl.Enum, size int, usage igl.Enum, data []byte) {
	gl.BufferData(uint32(target), size, ptr(data), uint32(usage))
}

func (f *Functions) BufferSubData(target igl.Enum, offset int, data []byte) {
	gl.BufferSubData(uint32(target), offset, len(data), ptr(data))
}

func (f *Functions) CreateVertexArray() igl.VertexArray {
	var a uint32
	gl.GenVertexArrays(1, &a)
	return igl.VertexArray{V: uint(a)}
}

func (f *Functions) DeleteVertexArray(a igl.VertexArray) {
	v := uint32(a.V)
	gl.DeleteVertexArrays(1, &v)
}

func (f *Functions) BindVertexArray(a igl.VertexArray) {
	gl.BindVertexArray(uint32(a.V))
}

func (f *Functions) EnableVertexAttribArray(a igl.Attrib) {
	gl.EnableVertexAttribArray(uint32(a))
}

func (f *Functions) VertexAttribPointer(dst igl.Attrib, size int, ty igl.Enum, normalized bool, stride, offset int) {
	gl.VertexAttribPointerWithOffset(uint32(dst), int32(size), uint32(ty), normalized, int32(stride), uintptr(offset))
}

func (f *Functions) CreateShader(ty igl.Enum) igl.Shader {
	return igl.Shader{V: uint(gl.CreateShader(uint32(ty)))}
}

func (f *Functions) DeleteShader(s igl.Shader) {
	gl.DeleteShader(uint32(s.V))
}

func (f *Functions) ShaderSource(s igl.Shader, src string) {
	if !strings.HasSuffix(src, "\x00") {
		src += "\x00"
	}
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(uint32(s.V), 1, csrc, nil)
}

func (f *Functions) CompileShader(s igl.Shader) {
	gl.CompileShader(uint32(s.V))
}

func (f *Functions) GetShaderi(s igl.Shader, pname igl.Enum) int {
	var v int32
	gl.GetShaderiv(uint32(s.V), uint32(pname), &v)
	return int(v)
}

func (f *Functions) GetShaderInfoLog(s igl.Shader) string {
	n := f.GetShaderi(s, igl.INFO_LOG_LENGTH)
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n)
	gl.GetShaderInfoLog(uint32(s.V), int32(n), nil, &buf[0])
	return igl.GoString(buf)
}

func (f *Functions) CreateProgram() igl.Program {
	return igl.Program{V: uint(gl.CreateProgram())}
}

func (f *Functions) DeleteProgram(p igl.Program) {
	gl.DeleteProgram(uint32(p.V))
}

func (f *Functions) AttachShader(p igl.Program, s igl.Shader) {
	gl.AttachShader(uint32(p.V), uint32(s.V))
}

func (f *Functions) LinkProgram(p igl.Program) {
	gl.LinkProgram(uint32(p.V))
}

func (f *Functions) GetProgrami(p igl.Program, pname igl.Enum) int {
	var v int32
	gl.GetProgramiv(uint32(p.V), uint32(pname), &v)
	return int(v)
}

func (f *Functions) GetProgramInfoLog(p igl.Program) string {
	n := f.GetProgrami(p, igl.INFO_LOG_LENGTH)
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n)
	gl.GetProgramInfoLog(uint32(p.V), int32(n), nil, &buf[0])
	return igl.GoString(buf)
}

func (f *Functions) UseProgram(p igl.Program) {
	gl.UseProgram(uint32(p.V))
}

func (f *Functions) GetUniformBlockIndex(p igl.Program, name string) uint {
	cname, free := cstr(name)
	defer free()
	idx := gl.GetUniformBlockIndex(uint32(p.V), cname)
	if idx == gl.INVALID_INDEX {
		return igl.INVALID_INDEX
	}
	return uint(idx)
}

func (f *Functions) UniformBlockBinding(p igl.Program, uniformBlockIndex uint, uniformBlockBinding uint) {
	gl.UniformBlockBinding(uint32(p.V), uint32(uniformBlockIndex), uint32(uniformBlockBinding))
}

func (f *Functions) GetUniformLocation(p igl.Program, name string) igl.Uniform {
	cname, free := cstr(name)
	defer free()
	return igl.Uniform{V: int(gl.GetUniformLocation(uint32(p.V), cname))}
}

func (f *Functions) Uniform1i(dst igl.Uniform, v int) {
	gl.Uniform1i(int32(dst.V), int32(v))
}

func (f *Functions) CreateTexture() igl.Texture {
	var t uint32
	gl.GenTextures(1, &t)
	return igl.Texture{V: uint(t)}
}

func (f *Functions) DeleteTexture(t igl.Texture) {
	v := uint32(t.V)
	gl.DeleteTextures(1, &v)
}

func (f *Functions) ActiveTexture(unit igl.Enum) {
	gl.ActiveTexture(uint32(unit))
}

func (f *Functions) BindTexture(target igl.Enum, t igl.Texture) {
	gl.BindTexture(uint32(target), uint32(t.V))
}

func (f *Functions) TexImage2D(target igl.Enum, level int, internalFormat igl.Enum, width, height int, format, ty igl.Enum, data []byte) {
	gl.TexImage2D(uint32(target), int32(level), int32(internalFormat), int32(width), int32(height), 0, uint32(format), uint32(ty), ptr(data))
}

func (f *Functions) GetTexImage(target igl.Enum, level int, format, ty igl.Enum, dst []byte) {
	gl.GetTexImage(uint32(target), int32(level), uint32(format), uint32(ty), ptr(dst))
}

func (f *Functions) TexParameteri(target, pname igl.Enum, param int) {
	gl.TexParameteri(uint32(target), uint32(pname), int32(param))
}

func (f *Functions) GenerateMipmap(target igl.Enum) {
	gl.GenerateMipmap(uint32(target))
}

func (f *Functions) CreateRenderbuffer() igl.Renderbuffer {
	var r uint32
	gl.GenRenderbuffers(1, &r)
	return igl.Renderbuffer{V: uint(r)}
}

func (f *Functions) DeleteRenderbuffer(r igl.Renderbuffer) {
	v := uint32(r.V)
	gl.DeleteRenderbuffers(1, &v)
}

func (f *Functions) BindRenderbuffer(target igl.Enum, r igl.Renderbuffer) {
	gl.BindRenderbuffer(uint32(target), uint32(r.V))
}

func (f *Functions) RenderbufferStorage(target, internalFormat igl.Enum, width, height int) {
	gl.RenderbufferStorage(uint32(target), uint32(internalFormat), int32(width), int32(height))
}

func (f *Functions) RenderbufferStorageMultisample(target igl.Enum, samples int, internalFormat igl.Enum, width, height int) {
	gl.RenderbufferStorageMultisample(uint32(target), int32(samples), uint32(internalFormat), int32(width), int32(height))
}

func (f *Functions) CreateFramebuffer() igl.Framebuffer {
	var fb uint32
	gl.GenFramebuffers(1, &fb)
	return igl.Framebuffer{V: uint(fb)}
}

func (f *Functions) DeleteFramebuffer(fb igl.Framebuffer) {
	v := uint32(fb.V)
	gl.DeleteFramebuffers(1, &v)
}

func (f *Functions) BindFramebuffer(target igl.Enum, fb igl.Framebuffer) {
	gl.BindFramebuffer(uint32(target), uint32(fb.V))
}

func (f *Functions) FramebufferTexture2D(target, attachment, texTarget igl.Enum, t igl.Texture, level int) {
	gl.FramebufferTexture2D(uint32(target), uint32(attachment), uint32(texTarget), uint32(t.V), int32(level))
}

func (f *Functions) FramebufferRenderbuffer(target, attachment, renderbufferTarget igl.Enum, r igl.Renderbuffer) {
	gl.FramebufferRenderbuffer(uint32(target), uint32(attachment), uint32(renderbufferTarget), uint32(r.V))
}

func (f *Functions) CheckFramebufferStatus(target igl.Enum) igl.Enum {
	return igl.Enum(gl.CheckFramebufferStatus(uint32(target)))
}

func (f *Functions) DrawBuffers(bufs []igl.Enum) {
	if len(bufs) == 0 {
		return
	}
	b := make([]uint32, len(bufs))
	for i, e := range bufs {
		b[i] = uint32(e)
	}
	gl.DrawBuffers(int32(len(b)), &b[0])
}

func (f *Functions) ReadPixels(x, y, width, height int, format, ty igl.Enum, data []byte) {
	gl.ReadPixels(int32(x), int32(y), int32(width), int32(height), uint32(format), uint32(ty), ptr(data))
}

func (f *Functions) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (f *Functions) Enable(capability igl.Enum) {
	gl.Enable(uint32(capability))
}

func (f *Functions) Disable(capability igl.Enum) {
	gl.Disable(uint32(capability))
}

func (f *Functions) CullFace(mode igl.Enum) {
	gl.CullFace(uint32(mode))
}

func (f *Functions) FrontFace(mode igl.Enum) {
	gl.FrontFace(uint32(mode))
}

func (f *Functions) DepthFunc(fn igl.Enum) {
	gl.DepthFunc(uint32(fn))
}

func (f *Functions) PolygonMode(face, mode igl.Enum) {
	gl.PolygonMode(uint32(face), uint32(mode))
}

func (f *Functions) PointSize(size float32) {
	gl.PointSize(size)
}

func (f *Functions) LineWidth(width float32) {
	gl.LineWidth(width)
}

func (f *Functions) ClearColor(red, green, blue, alpha float32) {
	gl.ClearColor(red, green, blue, alpha)
}

func (f *Functions) ClearDepth(d float32) {
	gl.ClearDepth(float64(d))
}

func (f *Functions) Clear(mask igl.Enum) {
	gl.Clear(uint32(mask))
}

func (f *Functions) DrawArrays(mode igl.Enum, first, count int) {
	gl.DrawArrays(uint32(mode), int32(first), int32(count))
}

func (f *Functions) DrawElements(mode igl.Enum, count int, ty igl.Enum, offset int) {
	gl.DrawElements(uint32(mode), int32(count), uint32(ty), gl.PtrOffset(offset))
}
