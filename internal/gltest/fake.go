// SPDX-License-Identifier: Unlicense OR MIT

// Package gltest provides an in-memory OpenGL driver for tests.
package gltest

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/quadgl/gpu/internal/gl"
)

// Call is one recorded driver call.
type Call struct {
	Name string
	Args []any
}

func (c Call) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = fmt.Sprint(a)
	}
	return c.Name + "(" + strings.Join(args, ", ") + ")"
}

type shader struct {
	typ      gl.Enum
	src      string
	compiled bool
	log      string
}

type program struct {
	shaders []uint
	linked  bool
	log     string
	blocks  []string
	// uniforms maps names to locations.
	uniforms map[string]int
	bindings map[uint]uint
	values   map[int]int
}

type vertexArray struct {
	elements gl.Buffer
	enabled  map[gl.Attrib]bool
}

type framebuffer struct {
	attachments map[gl.Enum]uint
	drawBuffers []gl.Enum
}

// Fake is a driver that keeps object state in memory. It allocates
// the lowest free name per object kind, so a deleted name is reused by
// the next allocation. Shader sources compile unless they contain
// "#error" or lack a main function; uniform blocks and uniforms are
// found by scanning the sources.
type Fake struct {
	Calls   []Call
	Version string

	// Incomplete makes CheckFramebufferStatus report an incomplete
	// framebuffer.
	Incomplete bool
	// LinkFailure, if set, makes LinkProgram fail with it as the log.
	LinkFailure string

	err     gl.Enum
	names   map[string]map[uint]bool
	deleted map[string][]uint

	buffers      map[uint][]byte
	bound        map[gl.Enum]gl.Buffer
	vertexArrays map[uint]*vertexArray
	vertexArray  uint
	shaders      map[uint]*shader
	programs     map[uint]*program
	program      uint
	textures     map[uint][]byte
	activeUnit   gl.Enum
	units        map[gl.Enum]gl.Texture
	framebuffers map[uint]*framebuffer
	framebuffer  uint
	// Storage records "single" or "multisample" per renderbuffer.
	Storage      map[uint]string
	renderbuffer uint
	// Pixels is returned by ReadPixels, repeated as needed.
	Pixels []byte
}

var (
	blockRe   = regexp.MustCompile(`uniform\s+(\w+)\s*\{`)
	uniformRe = regexp.MustCompile(`uniform\s+\w+\s+(\w+)\s*;`)
	mainRe    = regexp.MustCompile(`void\s+main\s*\(`)
)

func New() *Fake {
	return &Fake{
		Version:      "3.3.0 Fake",
		names:        map[string]map[uint]bool{},
		deleted:      map[string][]uint{},
		buffers:      map[uint][]byte{},
		bound:        map[gl.Enum]gl.Buffer{},
		vertexArrays: map[uint]*vertexArray{},
		shaders:      map[uint]*shader{},
		programs:     map[uint]*program{},
		textures:     map[uint][]byte{},
		activeUnit:   gl.TEXTURE0,
		units:        map[gl.Enum]gl.Texture{},
		framebuffers: map[uint]*framebuffer{},
		Storage:      map[uint]string{},
	}
}

func (f *Fake) record(name string, args ...any) {
	f.Calls = append(f.Calls, Call{Name: name, Args: args})
}

// setErr records code unless an earlier error is pending, as
// glGetError does.
func (f *Fake) setErr(code gl.Enum) {
	if f.err == gl.NO_ERROR {
		f.err = code
	}
}

// InjectError makes the next GetError report code.
func (f *Fake) InjectError(code gl.Enum) {
	f.err = code
}

func (f *Fake) alloc(kind string) uint {
	live := f.names[kind]
	if live == nil {
		live = map[uint]bool{}
		f.names[kind] = live
	}
	id := uint(1)
	for live[id] {
		id++
	}
	live[id] = true
	return id
}

func (f *Fake) free(kind string, id uint) bool {
	if id == 0 || !f.names[kind][id] {
		return false
	}
	delete(f.names[kind], id)
	f.deleted[kind] = append(f.deleted[kind], id)
	return true
}

// Live returns the sorted live names of an object kind: "buffer",
// "texture", "renderbuffer", "vertexarray", "shader", "program" or
// "framebuffer".
func (f *Fake) Live(kind string) []uint {
	var ids []uint
	for id := range f.names[kind] {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Deleted returns the names of an object kind in deletion order.
func (f *Fake) Deleted(kind string) []uint {
	return f.deleted[kind]
}

// Count returns the number of recorded calls to name.
func (f *Fake) Count(name string) int {
	n := 0
	for _, c := range f.Calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Names returns the recorded call names in order.
func (f *Fake) Names() []string {
	names := make([]string, len(f.Calls))
	for i, c := range f.Calls {
		names[i] = c.Name
	}
	return names
}

// Find returns the recorded calls to name.
func (f *Fake) Find(name string) []Call {
	var calls []Call
	for _, c := range f.Calls {
		if c.Name == name {
			calls = append(calls, c)
		}
	}
	return calls
}

// Reset forgets the recorded calls.
func (f *Fake) Reset() {
	f.Calls = nil
}

// BufferContents returns the contents of buffer id.
func (f *Fake) BufferContents(id uint) []byte {
	return f.buffers[id]
}

// TextureContents returns the level 0 contents of texture id.
func (f *Fake) TextureContents(id uint) []byte {
	return f.textures[id]
}

// DrawBuffersOf returns the draw buffer list of framebuffer id.
func (f *Fake) DrawBuffersOf(id uint) []gl.Enum {
	if fb := f.framebuffers[id]; fb != nil {
		return fb.drawBuffers
	}
	return nil
}

// UniformValue returns the integer uniform at loc of program id.
func (f *Fake) UniformValue(id uint, loc int) int {
	return f.programs[id].values[loc]
}

// BlockBinding returns the binding slot of uniform block index of
// program id.
func (f *Fake) BlockBinding(id uint, index uint) (uint, bool) {
	b, ok := f.programs[id].bindings[index]
	return b, ok
}

func (f *Fake) GetError() gl.Enum {
	err := f.err
	f.err = gl.NO_ERROR
	return err
}

func (f *Fake) GetString(pname gl.Enum) string {
	f.record("GetString", pname)
	switch pname {
	case gl.VERSION:
		return f.Version
	case gl.RENDERER:
		return "gltest"
	case gl.SHADING_LANGUAGE_VERSION:
		return "3.30"
	}
	f.setErr(gl.INVALID_ENUM)
	return ""
}

func (f *Fake) PixelStorei(pname gl.Enum, param int) {
	f.record("PixelStorei", pname, param)
}

func (f *Fake) CreateBuffer() gl.Buffer {
	id := f.alloc("buffer")
	f.record("CreateBuffer", id)
	return gl.Buffer{V: id}
}

func (f *Fake) DeleteBuffer(b gl.Buffer) {
	f.record("DeleteBuffer", b.V)
	if f.free("buffer", b.V) {
		delete(f.buffers, b.V)
		for t, cur := range f.bound {
			if cur == b {
				delete(f.bound, t)
			}
		}
	}
}

func (f *Fake) BindBuffer(target gl.Enum, b gl.Buffer) {
	f.record("BindBuffer", target, b.V)
	if b.V != 0 && !f.names["buffer"][b.V] {
		f.setErr(gl.INVALID_VALUE)
		return
	}
	if target == gl.ELEMENT_ARRAY_BUFFER {
		if va := f.vertexArrays[f.vertexArray]; va != nil {
			va.elements = b
		}
	}
	f.bound[target] = b
}

func (f *Fake) BindBufferBase(target gl.Enum, index int, b gl.Buffer) {
	f.record("BindBufferBase", target, index, b.V)
	f.bound[target] = b
}

func (f *Fake) BufferData(target gl.Enum, size int, usage gl.Enum, data []byte) {
	f.record("BufferData", target, size, usage)
	b, ok := f.bound[target]
	if !ok || b.V == 0 {
		f.setErr(gl.INVALID_OPERATION)
		return
	}
	buf := make([]byte, size)
	copy(buf, data)
	f.buffers[b.V] = buf
}

func (f *Fake) BufferSubData(target gl.Enum, offset int, data []byte) {
	f.record("BufferSubData", target, offset, len(data))
	b, ok := f.bound[target]
	if !ok || b.V == 0 {
		f.setErr(gl.INVALID_OPERATION)
		return
	}
	buf := f.buffers[b.V]
	if offset < 0 || offset+len(data) > len(buf) {
		f.setErr(gl.INVALID_VALUE)
		return
	}
	copy(buf[offset:], data)
}

func (f *Fake) CreateVertexArray() gl.VertexArray {
	id := f.alloc("vertexarray")
	f.vertexArrays[id] = &vertexArray{enabled: map[gl.Attrib]bool{}}
	f.record("CreateVertexArray", id)
	return gl.VertexArray{V: id}
}

func (f *Fake) DeleteVertexArray(a gl.VertexArray) {
	f.record("DeleteVertexArray", a.V)
	if f.free("vertexarray", a.V) {
		delete(f.vertexArrays, a.V)
		if f.vertexArray == a.V {
			f.vertexArray = 0
		}
	}
}

func (f *Fake) BindVertexArray(a gl.VertexArray) {
	f.record("BindVertexArray", a.V)
	if a.V != 0 && f.vertexArrays[a.V] == nil {
		f.setErr(gl.INVALID_OPERATION)
		return
	}
	f.vertexArray = a.V
}

func (f *Fake) EnableVertexAttribArray(a gl.Attrib) {
	f.record("EnableVertexAttribArray", a)
	va := f.vertexArrays[f.vertexArray]
	if va == nil {
		f.setErr(gl.INVALID_OPERATION)
		return
	}
	va.enabled[a] = true
}

func (f *Fake) VertexAttribPointer(dst gl.Attrib, size int, ty gl.Enum, normalized bool, stride, offset int) {
	f.record("VertexAttribPointer", dst, size, ty, normalized, stride, offset)
	if f.vertexArray == 0 || !f.bound[gl.ARRAY_BUFFER].Valid() {
		f.setErr(gl.INVALID_OPERATION)
	}
	if size < 1 || size > 4 {
		f.setErr(gl.INVALID_VALUE)
	}
}

func (f *Fake) CreateShader(ty gl.Enum) gl.Shader {
	id := f.alloc("shader")
	f.shaders[id] = &shader{typ: ty}
	f.record("CreateShader", ty, id)
	return gl.Shader{V: id}
}

func (f *Fake) DeleteShader(s gl.Shader) {
	f.record("DeleteShader", s.V)
	if f.free("shader", s.V) {
		delete(f.shaders, s.V)
	}
}

func (f *Fake) ShaderSource(s gl.Shader, src string) {
	f.record("ShaderSource", s.V)
	if sh := f.shaders[s.V]; sh != nil {
		sh.src = src
	}
}

func (f *Fake) CompileShader(s gl.Shader) {
	f.record("CompileShader", s.V)
	sh := f.shaders[s.V]
	if sh == nil {
		f.setErr(gl.INVALID_VALUE)
		return
	}
	switch {
	case strings.Contains(sh.src, "#error"):
		sh.log = "0:1(1): error: #error directive\n"
	case !mainRe.MatchString(sh.src):
		sh.log = "0:1(1): error: no main function\n"
	default:
		sh.compiled = true
		sh.log = ""
	}
}

func (f *Fake) GetShaderi(s gl.Shader, pname gl.Enum) int {
	sh := f.shaders[s.V]
	if sh == nil {
		f.setErr(gl.INVALID_VALUE)
		return 0
	}
	switch pname {
	case gl.COMPILE_STATUS:
		if sh.compiled {
			return gl.TRUE
		}
		return gl.FALSE
	case gl.INFO_LOG_LENGTH:
		return len(sh.log)
	}
	f.setErr(gl.INVALID_ENUM)
	return 0
}

func (f *Fake) GetShaderInfoLog(s gl.Shader) string {
	if sh := f.shaders[s.V]; sh != nil {
		return sh.log
	}
	return ""
}

func (f *Fake) CreateProgram() gl.Program {
	id := f.alloc("program")
	f.programs[id] = &program{
		uniforms: map[string]int{},
		bindings: map[uint]uint{},
		values:   map[int]int{},
	}
	f.record("CreateProgram", id)
	return gl.Program{V: id}
}

func (f *Fake) DeleteProgram(p gl.Program) {
	f.record("DeleteProgram", p.V)
	if f.free("program", p.V) {
		delete(f.programs, p.V)
		if f.program == p.V {
			f.program = 0
		}
	}
}

func (f *Fake) AttachShader(p gl.Program, s gl.Shader) {
	f.record("AttachShader", p.V, s.V)
	prog := f.programs[p.V]
	if prog == nil || f.shaders[s.V] == nil {
		f.setErr(gl.INVALID_VALUE)
		return
	}
	prog.shaders = append(prog.shaders, s.V)
}

func (f *Fake) LinkProgram(p gl.Program) {
	f.record("LinkProgram", p.V)
	prog := f.programs[p.V]
	if prog == nil {
		f.setErr(gl.INVALID_VALUE)
		return
	}
	stages := map[gl.Enum]bool{}
	prog.blocks = nil
	prog.uniforms = map[string]int{}
	for _, id := range prog.shaders {
		sh := f.shaders[id]
		if sh == nil || !sh.compiled {
			prog.log = "error: linking with uncompiled shader"
			return
		}
		stages[sh.typ] = true
		for _, m := range blockRe.FindAllStringSubmatch(sh.src, -1) {
			prog.blocks = append(prog.blocks, m[1])
		}
		for _, m := range uniformRe.FindAllStringSubmatch(sh.src, -1) {
			if _, ok := prog.uniforms[m[1]]; !ok {
				prog.uniforms[m[1]] = len(prog.uniforms)
			}
		}
	}
	if !stages[gl.VERTEX_SHADER] || !stages[gl.FRAGMENT_SHADER] {
		prog.log = "error: program lacks a vertex or fragment stage"
		return
	}
	if f.LinkFailure != "" {
		prog.log = f.LinkFailure
		return
	}
	prog.linked = true
	prog.log = ""
}

func (f *Fake) GetProgrami(p gl.Program, pname gl.Enum) int {
	prog := f.programs[p.V]
	if prog == nil {
		f.setErr(gl.INVALID_VALUE)
		return 0
	}
	switch pname {
	case gl.LINK_STATUS:
		if prog.linked {
			return gl.TRUE
		}
		return gl.FALSE
	case gl.INFO_LOG_LENGTH:
		return len(prog.log)
	}
	f.setErr(gl.INVALID_ENUM)
	return 0
}

func (f *Fake) GetProgramInfoLog(p gl.Program) string {
	if prog := f.programs[p.V]; prog != nil {
		return prog.log
	}
	return ""
}

func (f *Fake) UseProgram(p gl.Program) {
	f.record("UseProgram", p.V)
	if p.V != 0 {
		prog := f.programs[p.V]
		if prog == nil || !prog.linked {
			f.setErr(gl.INVALID_OPERATION)
			return
		}
	}
	f.program = p.V
}

func (f *Fake) GetUniformBlockIndex(p gl.Program, name string) uint {
	f.record("GetUniformBlockIndex", p.V, name)
	prog := f.programs[p.V]
	if prog == nil || !prog.linked {
		f.setErr(gl.INVALID_OPERATION)
		return gl.INVALID_INDEX
	}
	for i, b := range prog.blocks {
		if b == name {
			return uint(i)
		}
	}
	return gl.INVALID_INDEX
}

func (f *Fake) UniformBlockBinding(p gl.Program, uniformBlockIndex uint, uniformBlockBinding uint) {
	f.record("UniformBlockBinding", p.V, uniformBlockIndex, uniformBlockBinding)
	prog := f.programs[p.V]
	if prog == nil || uniformBlockIndex >= uint(len(prog.blocks)) {
		f.setErr(gl.INVALID_VALUE)
		return
	}
	prog.bindings[uniformBlockIndex] = uniformBlockBinding
}

func (f *Fake) GetUniformLocation(p gl.Program, name string) gl.Uniform {
	f.record("GetUniformLocation", p.V, name)
	prog := f.programs[p.V]
	if prog == nil || !prog.linked {
		f.setErr(gl.INVALID_OPERATION)
		return gl.Uniform{V: -1}
	}
	if loc, ok := prog.uniforms[name]; ok {
		return gl.Uniform{V: loc}
	}
	return gl.Uniform{V: -1}
}

func (f *Fake) Uniform1i(dst gl.Uniform, v int) {
	f.record("Uniform1i", dst.V, v)
	prog := f.programs[f.program]
	if prog == nil {
		f.setErr(gl.INVALID_OPERATION)
		return
	}
	prog.values[dst.V] = v
}

func (f *Fake) CreateTexture() gl.Texture {
	id := f.alloc("texture")
	f.record("CreateTexture", id)
	return gl.Texture{V: id}
}

func (f *Fake) DeleteTexture(t gl.Texture) {
	f.record("DeleteTexture", t.V)
	if f.free("texture", t.V) {
		delete(f.textures, t.V)
		for u, cur := range f.units {
			if cur == t {
				delete(f.units, u)
			}
		}
	}
}

func (f *Fake) ActiveTexture(unit gl.Enum) {
	f.record("ActiveTexture", unit)
	f.activeUnit = unit
}

func (f *Fake) BindTexture(target gl.Enum, t gl.Texture) {
	f.record("BindTexture", target, t.V)
	if t.V != 0 && !f.names["texture"][t.V] {
		f.setErr(gl.INVALID_VALUE)
		return
	}
	f.units[f.activeUnit] = t
}

func (f *Fake) TexImage2D(target gl.Enum, level int, internalFormat gl.Enum, width, height int, format, ty gl.Enum, data []byte) {
	f.record("TexImage2D", target, level, internalFormat, width, height, format, ty, data != nil)
	t := f.units[f.activeUnit]
	if !t.Valid() {
		f.setErr(gl.INVALID_OPERATION)
		return
	}
	if level == 0 {
		f.textures[t.V] = append([]byte(nil), data...)
	}
}

func (f *Fake) GetTexImage(target gl.Enum, level int, format, ty gl.Enum, dst []byte) {
	f.record("GetTexImage", target, level, format, ty)
	t := f.units[f.activeUnit]
	if !t.Valid() {
		f.setErr(gl.INVALID_OPERATION)
		return
	}
	copy(dst, f.textures[t.V])
}

func (f *Fake) TexParameteri(target, pname gl.Enum, param int) {
	f.record("TexParameteri", target, pname, param)
}

func (f *Fake) GenerateMipmap(target gl.Enum) {
	f.record("GenerateMipmap", target)
}

func (f *Fake) CreateRenderbuffer() gl.Renderbuffer {
	id := f.alloc("renderbuffer")
	f.record("CreateRenderbuffer", id)
	return gl.Renderbuffer{V: id}
}

func (f *Fake) DeleteRenderbuffer(r gl.Renderbuffer) {
	f.record("DeleteRenderbuffer", r.V)
	if f.free("renderbuffer", r.V) {
		delete(f.Storage, r.V)
	}
}

func (f *Fake) BindRenderbuffer(target gl.Enum, r gl.Renderbuffer) {
	f.record("BindRenderbuffer", target, r.V)
	f.renderbuffer = r.V
}

func (f *Fake) RenderbufferStorage(target, internalFormat gl.Enum, width, height int) {
	f.record("RenderbufferStorage", target, internalFormat, width, height)
	f.Storage[f.renderbuffer] = "single"
}

func (f *Fake) RenderbufferStorageMultisample(target gl.Enum, samples int, internalFormat gl.Enum, width, height int) {
	f.record("RenderbufferStorageMultisample", target, samples, internalFormat, width, height)
	f.Storage[f.renderbuffer] = "multisample"
}

func (f *Fake) CreateFramebuffer() gl.Framebuffer {
	id := f.alloc("framebuffer")
	f.framebuffers[id] = &framebuffer{attachments: map[gl.Enum]uint{}}
	f.record("CreateFramebuffer", id)
	return gl.Framebuffer{V: id}
}

func (f *Fake) DeleteFramebuffer(fb gl.Framebuffer) {
	f.record("DeleteFramebuffer", fb.V)
	if f.free("framebuffer", fb.V) {
		delete(f.framebuffers, fb.V)
		if f.framebuffer == fb.V {
			f.framebuffer = 0
		}
	}
}

func (f *Fake) BindFramebuffer(target gl.Enum, fb gl.Framebuffer) {
	f.record("BindFramebuffer", target, fb.V)
	if fb.V != 0 && f.framebuffers[fb.V] == nil {
		f.setErr(gl.INVALID_OPERATION)
		return
	}
	f.framebuffer = fb.V
}

func (f *Fake) FramebufferTexture2D(target, attachment, texTarget gl.Enum, t gl.Texture, level int) {
	f.record("FramebufferTexture2D", target, attachment, texTarget, t.V, level)
	fb := f.framebuffers[f.framebuffer]
	if fb == nil {
		f.setErr(gl.INVALID_OPERATION)
		return
	}
	fb.attachments[attachment] = t.V
}

func (f *Fake) FramebufferRenderbuffer(target, attachment, renderbufferTarget gl.Enum, r gl.Renderbuffer) {
	f.record("FramebufferRenderbuffer", target, attachment, renderbufferTarget, r.V)
	fb := f.framebuffers[f.framebuffer]
	if fb == nil {
		f.setErr(gl.INVALID_OPERATION)
		return
	}
	fb.attachments[attachment] = r.V
}

func (f *Fake) CheckFramebufferStatus(target gl.Enum) gl.Enum {
	f.record("CheckFramebufferStatus", target)
	fb := f.framebuffers[f.framebuffer]
	switch {
	case f.framebuffer == 0:
		return gl.FRAMEBUFFER_COMPLETE
	case fb == nil:
		return gl.FRAMEBUFFER_UNDEFINED
	case f.Incomplete || len(fb.attachments) == 0:
		return 0x8cd7 // FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT
	}
	return gl.FRAMEBUFFER_COMPLETE
}

func (f *Fake) DrawBuffers(bufs []gl.Enum) {
	f.record("DrawBuffers", append([]gl.Enum(nil), bufs...))
	if fb := f.framebuffers[f.framebuffer]; fb != nil {
		fb.drawBuffers = append([]gl.Enum(nil), bufs...)
	}
}

func (f *Fake) ReadPixels(x, y, width, height int, format, ty gl.Enum, data []byte) {
	f.record("ReadPixels", x, y, width, height, format, ty)
	if len(f.Pixels) == 0 {
		return
	}
	for i := range data {
		data[i] = f.Pixels[i%len(f.Pixels)]
	}
}

func (f *Fake) Viewport(x, y, width, height int) {
	f.record("Viewport", x, y, width, height)
}

func (f *Fake) Enable(capability gl.Enum) {
	f.record("Enable", capability)
}

func (f *Fake) Disable(capability gl.Enum) {
	f.record("Disable", capability)
}

func (f *Fake) CullFace(mode gl.Enum) {
	f.record("CullFace", mode)
}

func (f *Fake) FrontFace(mode gl.Enum) {
	f.record("FrontFace", mode)
}

func (f *Fake) DepthFunc(fn gl.Enum) {
	f.record("DepthFunc", fn)
}

func (f *Fake) PolygonMode(face, mode gl.Enum) {
	f.record("PolygonMode", face, mode)
}

func (f *Fake) PointSize(size float32) {
	f.record("PointSize", size)
}

func (f *Fake) LineWidth(width float32) {
	f.record("LineWidth", width)
}

func (f *Fake) ClearColor(red, green, blue, alpha float32) {
	f.record("ClearColor", red, green, blue, alpha)
}

func (f *Fake) ClearDepth(d float32) {
	f.record("ClearDepth", d)
}

func (f *Fake) Clear(mask gl.Enum) {
	f.record("Clear", mask)
}

func (f *Fake) drawable() bool {
	prog := f.programs[f.program]
	return f.vertexArray != 0 && prog != nil && prog.linked
}

func (f *Fake) DrawArrays(mode gl.Enum, first, count int) {
	f.record("DrawArrays", mode, first, count)
	if !f.drawable() {
		f.setErr(gl.INVALID_OPERATION)
	}
}

func (f *Fake) DrawElements(mode gl.Enum, count int, ty gl.Enum, offset int) {
	f.record("DrawElements", mode, count, ty, offset)
	if !f.drawable() || !f.vertexArrays[f.vertexArray].elements.Valid() {
		f.setErr(gl.INVALID_OPERATION)
	}
}
