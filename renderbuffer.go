// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"fmt"

	"github.com/quadgl/gpu/internal/gl"
)

// Renderbuffer is an owner of a driver renderbuffer. Renderbuffers can
// only be used as framebuffer attachments.
type Renderbuffer struct {
	own     *owner
	obj     gl.Renderbuffer
	width   int
	height  int
	samples int
	format  TextureFormat
}

func newRenderbuffer(obj gl.Renderbuffer, q *releaseQueue, width, height, samples int, format TextureFormat) *Renderbuffer {
	own := newOwner(newDestructor(obj.V, q))
	return track(&Renderbuffer{
		own:     own,
		obj:     obj,
		width:   width,
		height:  height,
		samples: samples,
		format:  format,
	}, own)
}

func (r *Renderbuffer) ID() uint                        { return r.obj.V }
func (r *Renderbuffer) Dimensions() (width, height int) { return r.width, r.height }
func (r *Renderbuffer) Samples() int                    { return r.samples }
func (r *Renderbuffer) Format() TextureFormat           { return r.format }

func (r *Renderbuffer) Clone() *Renderbuffer {
	r.own.mustLive()
	c := *r
	c.own = newOwner(r.own.d)
	return track(&c, c.own)
}

func (r *Renderbuffer) Release() { r.own.release() }

func (r *Renderbuffer) Equal(o *Renderbuffer) bool { return r.obj == o.obj }

func (r *Renderbuffer) String() string {
	return fmt.Sprintf("Renderbuffer(%d, %dx%d, %d samples)", r.obj.V, r.width, r.height, r.samples)
}
