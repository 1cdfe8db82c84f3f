// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"fmt"

	"github.com/quadgl/gpu/internal/gl"
)

// MaxColorAttachments is the number of framebuffer color slots.
const MaxColorAttachments = 3

// Context is the windowing collaborator that owns the default
// framebuffer. A *glfw.Window satisfies it.
type Context interface {
	GetFramebufferSize() (width, height int)
}

// Attachment is a texture or a renderbuffer attached to a framebuffer.
// The zero Attachment is empty.
type Attachment struct {
	texture      *Texture2
	renderbuffer *Renderbuffer
}

// TextureAttachment attaches level 0 of t.
func TextureAttachment(t *Texture2) Attachment {
	return Attachment{texture: t}
}

func RenderbufferAttachment(r *Renderbuffer) Attachment {
	return Attachment{renderbuffer: r}
}

func (a Attachment) Empty() bool {
	return a.texture == nil && a.renderbuffer == nil
}

func (a Attachment) clone() Attachment {
	switch {
	case a.texture != nil:
		return Attachment{texture: a.texture.Clone()}
	case a.renderbuffer != nil:
		return Attachment{renderbuffer: a.renderbuffer.Clone()}
	}
	return a
}

func (a Attachment) handle() releaser {
	switch {
	case a.texture != nil:
		return a.texture
	case a.renderbuffer != nil:
		return a.renderbuffer
	}
	return nil
}

func (a Attachment) mustLive() {
	switch {
	case a.texture != nil:
		a.texture.own.mustLive()
	case a.renderbuffer != nil:
		a.renderbuffer.own.mustLive()
	}
}

// Framebuffer is an owner of a driver framebuffer. The framebuffer
// keeps its attachments alive.
type Framebuffer struct {
	own    *owner
	obj    gl.Framebuffer
	width  int
	height int
	ctx    Context // set for the default framebuffer
	color  [MaxColorAttachments]Attachment
	depth  Attachment
}

func newFramebuffer(obj gl.Framebuffer, q *releaseQueue, width, height int, color [MaxColorAttachments]Attachment, depth Attachment) *Framebuffer {
	var children []releaser
	for i, a := range color {
		if !a.Empty() {
			color[i] = a.clone()
			children = append(children, color[i].handle())
		}
	}
	if !depth.Empty() {
		depth = depth.clone()
		children = append(children, depth.handle())
	}
	own := newOwner(newDestructor(obj.V, q, children...))
	return track(&Framebuffer{
		own:    own,
		obj:    obj,
		width:  width,
		height: height,
		color:  color,
		depth:  depth,
	}, own)
}

func newDefaultFramebuffer(ctx Context) *Framebuffer {
	own := newOwner(newDestructor(0, nil))
	return &Framebuffer{own: own, ctx: ctx}
}

func (f *Framebuffer) ID() uint { return f.obj.V }

// Dimensions returns the framebuffer size. The default framebuffer
// asks its Context each time.
func (f *Framebuffer) Dimensions() (width, height int) {
	if f.ctx != nil {
		return f.ctx.GetFramebufferSize()
	}
	return f.width, f.height
}

// AspectRatio returns width divided by height, or 0 for an empty
// framebuffer.
func (f *Framebuffer) AspectRatio() float32 {
	w, h := f.Dimensions()
	if h == 0 {
		return 0
	}
	return float32(w) / float32(h)
}

func (f *Framebuffer) Clone() *Framebuffer {
	f.own.mustLive()
	c := *f
	c.own = newOwner(f.own.d)
	return track(&c, c.own)
}

func (f *Framebuffer) Release() { f.own.release() }

func (f *Framebuffer) Equal(o *Framebuffer) bool { return f.obj == o.obj }

func (f *Framebuffer) String() string {
	w, h := f.Dimensions()
	return fmt.Sprintf("Framebuffer(%d, %dx%d)", f.obj.V, w, h)
}
