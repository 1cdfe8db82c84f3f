// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"fmt"
	"image"

	"github.com/quadgl/gpu/internal/gl"
)

// Texture2 creates a texture with undefined contents.
func (f *Factory) Texture2(width, height int, mipmap bool, format TextureFormat) *Texture2 {
	f.Collect()
	obj := f.funcs.CreateTexture()
	f.check("glGenTextures")
	f.state.bindTexture(f.funcs, 0, gl.TEXTURE_2D, obj)
	f.check("glBindTexture")
	pf := format.storageFormat()
	f.funcs.TexImage2D(gl.TEXTURE_2D, 0, format.internalFormat(), width, height, clientOrder(format, pf), pf.dataType(), nil)
	f.check("glTexImage2D")
	if mipmap {
		f.funcs.GenerateMipmap(gl.TEXTURE_2D)
		f.check("glGenerateMipmap")
	}
	Logger().Debug("gpu: created texture", "id", obj.V, "width", width, "height", height, "format", format)
	return newTexture2(obj, f.queues[catTextures], width, height, mipmap, format)
}

// clientOrder returns the driver format of client pixels for a texture
// of the given storage format.
func clientOrder(format TextureFormat, pf PixelFormat) gl.Enum {
	if format.isDepth() {
		return gl.DEPTH_COMPONENT
	}
	return pf.order()
}

func checkPixelData(width, height int, pf PixelFormat, data []byte) {
	if n := width * height * pf.BytesPerPixel(); len(data) < n {
		panic(fmt.Errorf("gpu: %d bytes of pixel data for %dx%d pixels of %d bytes", len(data), width, height, pf.BytesPerPixel()))
	}
}

// WriteTexture2 replaces the contents of level 0 of t with data laid
// out as pf. The driver converts pf to the texture's format. Mipmaps
// are regenerated for textures created with them.
func (f *Factory) WriteTexture2(t *Texture2, pf PixelFormat, data []byte) {
	f.checkThread()
	t.own.mustLive()
	checkPixelData(t.width, t.height, pf, data)
	f.state.bindTexture(f.funcs, 0, gl.TEXTURE_2D, t.obj)
	f.check("glBindTexture")
	f.funcs.TexImage2D(gl.TEXTURE_2D, 0, t.format.internalFormat(), t.width, t.height, clientOrder(t.format, pf), pf.dataType(), data)
	f.check("glTexImage2D")
	if t.mipmap {
		f.funcs.GenerateMipmap(gl.TEXTURE_2D)
		f.check("glGenerateMipmap")
	}
}

// ReadTexture2 reads level 0 of t into dst, laid out as pf.
func (f *Factory) ReadTexture2(t *Texture2, pf PixelFormat, dst []byte) {
	f.checkThread()
	t.own.mustLive()
	checkPixelData(t.width, t.height, pf, dst)
	f.state.bindTexture(f.funcs, 0, gl.TEXTURE_2D, t.obj)
	f.check("glBindTexture")
	f.funcs.GetTexImage(gl.TEXTURE_2D, 0, clientOrder(t.format, pf), pf.dataType(), dst)
	f.check("glGetTexImage")
}

// GenerateMipmaps rebuilds the mipmap chain of t from level 0.
func (f *Factory) GenerateMipmaps(t *Texture2) {
	f.checkThread()
	t.own.mustLive()
	f.state.bindTexture(f.funcs, 0, gl.TEXTURE_2D, t.obj)
	f.check("glBindTexture")
	f.funcs.GenerateMipmap(gl.TEXTURE_2D)
	f.check("glGenerateMipmap")
}

// Renderbuffer creates a renderbuffer. Storage is multisampled when
// samples is greater than 1.
func (f *Factory) Renderbuffer(width, height, samples int, format TextureFormat) *Renderbuffer {
	f.Collect()
	obj := f.funcs.CreateRenderbuffer()
	f.check("glGenRenderbuffers")
	f.state.bindRenderbuffer(f.funcs, obj)
	f.check("glBindRenderbuffer")
	if samples > 1 {
		f.funcs.RenderbufferStorageMultisample(gl.RENDERBUFFER, samples, format.internalFormat(), width, height)
		f.check("glRenderbufferStorageMultisample")
	} else {
		f.funcs.RenderbufferStorage(gl.RENDERBUFFER, format.internalFormat(), width, height)
		f.check("glRenderbufferStorage")
	}
	Logger().Debug("gpu: created renderbuffer", "id", obj.V, "samples", samples)
	return newRenderbuffer(obj, f.queues[catRenderbuffers], width, height, samples, format)
}

// Framebuffer creates a framebuffer rendering to the color attachments
// and the optional depth attachment. Fragment output i is written to
// color slot i; empty slots are not written. An incomplete framebuffer
// panics with a *FramebufferError.
func (f *Factory) Framebuffer(width, height int, color [MaxColorAttachments]Attachment, depth Attachment) *Framebuffer {
	f.Collect()
	for _, a := range color {
		a.mustLive()
	}
	depth.mustLive()
	obj := f.funcs.CreateFramebuffer()
	f.check("glGenFramebuffers")
	f.state.bindFramebuffer(f.funcs, obj)
	f.check("glBindFramebuffer")
	drawBufs := []gl.Enum{}
	for i, a := range color {
		point := gl.Enum(gl.COLOR_ATTACHMENT0 + i)
		if a.Empty() {
			drawBufs = append(drawBufs, gl.NONE)
			continue
		}
		f.attach(point, a)
		drawBufs = append(drawBufs, point)
	}
	// Trailing empty slots need no entry.
	for len(drawBufs) > 1 && drawBufs[len(drawBufs)-1] == gl.NONE {
		drawBufs = drawBufs[:len(drawBufs)-1]
	}
	if !depth.Empty() {
		f.attach(gl.DEPTH_ATTACHMENT, depth)
	}
	f.funcs.DrawBuffers(drawBufs)
	f.check("glDrawBuffers")
	if st := f.funcs.CheckFramebufferStatus(gl.FRAMEBUFFER); st != gl.FRAMEBUFFER_COMPLETE {
		f.state.bindFramebuffer(f.funcs, gl.Framebuffer{})
		f.state.deleteFramebuffer(f.funcs, obj)
		panic(&FramebufferError{Status: st})
	}
	f.state.bindFramebuffer(f.funcs, gl.Framebuffer{})
	f.check("glBindFramebuffer")
	Logger().Debug("gpu: created framebuffer", "id", obj.V, "width", width, "height", height)
	return newFramebuffer(obj, f.queues[catFramebuffers], width, height, color, depth)
}

func (f *Factory) attach(point gl.Enum, a Attachment) {
	switch {
	case a.texture != nil:
		f.funcs.FramebufferTexture2D(gl.FRAMEBUFFER, point, gl.TEXTURE_2D, a.texture.obj, 0)
		f.check("glFramebufferTexture2D")
	case a.renderbuffer != nil:
		f.funcs.FramebufferRenderbuffer(gl.FRAMEBUFFER, point, gl.RENDERBUFFER, a.renderbuffer.obj)
		f.check("glFramebufferRenderbuffer")
	}
}

// ReadPixels reads the rectangle r of fb into dst, laid out as pf.
// Rows are ordered bottom to top.
func (f *Factory) ReadPixels(fb *Framebuffer, r image.Rectangle, pf PixelFormat, dst []byte) {
	f.checkThread()
	fb.own.mustLive()
	checkPixelData(r.Dx(), r.Dy(), pf, dst)
	f.state.bindFramebuffer(f.funcs, fb.obj)
	f.check("glBindFramebuffer")
	f.funcs.ReadPixels(r.Min.X, r.Min.Y, r.Dx(), r.Dy(), pf.order(), pf.dataType(), dst)
	f.check("glReadPixels")
}

// Clear resets the buffers of fb selected by op.
func (f *Factory) Clear(fb *Framebuffer, op ClearOp) {
	f.checkThread()
	fb.own.mustLive()
	var mask gl.Enum
	f.state.bindFramebuffer(f.funcs, fb.obj)
	f.check("glBindFramebuffer")
	if op.Color != nil {
		f.state.setClearColor(f.funcs, *op.Color)
		f.check("glClearColor")
		mask |= gl.COLOR_BUFFER_BIT
	}
	if op.Depth != nil {
		f.state.setClearDepth(f.funcs, *op.Depth)
		f.check("glClearDepth")
		mask |= gl.DEPTH_BUFFER_BIT
	}
	if mask == 0 {
		return
	}
	f.funcs.Clear(mask)
	f.check("glClear")
}
