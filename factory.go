// SPDX-License-Identifier: Unlicense OR MIT

// Package gpu wraps OpenGL 3.3 objects in reference counted handles
// and funnels every driver call through a Factory.
//
// Handles can be released from any goroutine. Releasing the last owner
// of an object queues its ID; the Factory deletes queued objects on the
// context thread when Collect runs, which every creation method does
// first.
package gpu

import (
	"fmt"

	"github.com/quadgl/gpu/internal/gl"
)

// Factory creates and mutates driver objects. A Factory is bound to
// the OS thread that made its context current and is not safe for
// concurrent use.
type Factory struct {
	funcs  Driver
	ctx    Context
	opts   options
	thread int
	state  glState

	version string

	queues  [numCategories]*releaseQueue
	dropped [numCategories]uint64
}

// category indexes the release queues.
type category uint8

const (
	catBuffers category = iota
	catTextures
	catRenderbuffers
	catVertexArrays
	catShaders
	catPrograms
	catFramebuffers
	numCategories
)

func (c category) String() string {
	switch c {
	case catBuffers:
		return "buffers"
	case catTextures:
		return "textures"
	case catRenderbuffers:
		return "renderbuffers"
	case catVertexArrays:
		return "vertex arrays"
	case catShaders:
		return "shaders"
	case catPrograms:
		return "programs"
	case catFramebuffers:
		return "framebuffers"
	default:
		return "invalid"
	}
}

// Pending counts released objects not yet deleted, per category, and
// the release requests dropped because a queue was full.
type Pending struct {
	Buffers       int
	Textures      int
	Renderbuffers int
	VertexArrays  int
	Shaders       int
	Programs      int
	Framebuffers  int
	Dropped       uint64
}

// NewFactory returns a Factory issuing calls to funcs. The context
// owning the default framebuffer must be current on the calling
// thread.
func NewFactory(funcs Driver, ctx Context, opts ...Option) *Factory {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	f := &Factory{
		funcs:  funcs,
		ctx:    ctx,
		opts:   o,
		thread: threadID(),
		state:  newGLState(),
	}
	for i := range f.queues {
		f.queues[i] = newReleaseQueue(o.queueCapacity)
	}
	f.version = funcs.GetString(gl.VERSION)
	// Client pixel rows are tightly packed.
	funcs.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	funcs.PixelStorei(gl.PACK_ALIGNMENT, 1)
	f.check("glPixelStorei")
	Logger().Info("gpu: factory created",
		"version", f.version,
		"renderer", funcs.GetString(gl.RENDERER),
		"queue_capacity", o.queueCapacity)
	return f
}

// Version returns the driver's GL_VERSION string.
func (f *Factory) Version() string { return f.version }

// check panics with a DriverError if the driver reports an error.
func (f *Factory) check(call string) {
	if f.opts.trace {
		Logger().Debug("gpu: driver call", "call", call)
	}
	if !f.opts.errorChecks {
		return
	}
	if code := f.funcs.GetError(); code != gl.NO_ERROR {
		panic(&DriverError{Call: call, Code: code})
	}
}

func (f *Factory) checkThread() {
	if !f.opts.threadCheck {
		return
	}
	if id := threadID(); id != f.thread {
		panic(&ThreadError{Want: f.thread, Got: id})
	}
}

// Collect deletes every object whose last owner has been released.
func (f *Factory) Collect() {
	f.checkThread()
	for c, q := range f.queues {
		cat := category(c)
		for {
			id, ok := q.next()
			if !ok {
				break
			}
			if id == 0 {
				continue
			}
			f.delete(cat, id)
			Logger().Debug("gpu: deleted", "category", cat, "id", id)
		}
		if d := q.dropped.Load(); d != f.dropped[c] {
			Logger().Warn("gpu: release queue full, objects leaked",
				"category", cat, "dropped", d-f.dropped[c])
			f.dropped[c] = d
		}
	}
}

func (f *Factory) delete(cat category, id uint) {
	switch cat {
	case catBuffers:
		f.state.deleteBuffer(f.funcs, gl.Buffer{V: id})
		f.check("glDeleteBuffers")
	case catTextures:
		f.state.deleteTexture(f.funcs, gl.Texture{V: id})
		f.check("glDeleteTextures")
	case catRenderbuffers:
		f.state.deleteRenderbuffer(f.funcs, gl.Renderbuffer{V: id})
		f.check("glDeleteRenderbuffers")
	case catVertexArrays:
		f.state.deleteVertexArray(f.funcs, gl.VertexArray{V: id})
		f.check("glDeleteVertexArrays")
	case catShaders:
		f.funcs.DeleteShader(gl.Shader{V: id})
		f.check("glDeleteShader")
	case catPrograms:
		f.state.deleteProgram(f.funcs, gl.Program{V: id})
		f.check("glDeleteProgram")
	case catFramebuffers:
		f.state.deleteFramebuffer(f.funcs, gl.Framebuffer{V: id})
		f.check("glDeleteFramebuffers")
	default:
		panic(fmt.Errorf("gpu: invalid category %d", cat))
	}
}

// Pending reports the release queue backlog.
func (f *Factory) Pending() Pending {
	p := Pending{
		Buffers:       f.queues[catBuffers].len(),
		Textures:      f.queues[catTextures].len(),
		Renderbuffers: f.queues[catRenderbuffers].len(),
		VertexArrays:  f.queues[catVertexArrays].len(),
		Shaders:       f.queues[catShaders].len(),
		Programs:      f.queues[catPrograms].len(),
		Framebuffers:  f.queues[catFramebuffers].len(),
	}
	for _, q := range f.queues {
		p.Dropped += q.dropped.Load()
	}
	return p
}

// InvalidateState forgets the cached context state. Call it after
// other code has issued GL calls on the Factory's context.
func (f *Factory) InvalidateState() {
	f.checkThread()
	f.state = unknownGLState()
}

// DefaultFramebuffer returns the context's own framebuffer. Its
// dimensions are queried from the Context on use, and releasing it has
// no effect.
func (f *Factory) DefaultFramebuffer() *Framebuffer {
	return newDefaultFramebuffer(f.ctx)
}
