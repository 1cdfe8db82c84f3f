// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"fmt"

	"github.com/quadgl/gpu/internal/gl"
)

// MaxAttributes is the number of vertex attribute slots.
const MaxAttributes = 8

// VertexArray is an owner of a driver vertex array object. The vertex
// array keeps the buffers of its accessors alive.
type VertexArray struct {
	own        *owner
	obj        gl.VertexArray
	attributes [MaxAttributes]*Accessor
	indices    *Accessor
}

func newVertexArray(obj gl.VertexArray, q *releaseQueue, attributes [MaxAttributes]*Accessor, indices *Accessor) *VertexArray {
	var children []releaser
	for i, a := range attributes {
		if a != nil {
			attributes[i] = a.Clone()
			children = append(children, attributes[i])
		}
	}
	if indices != nil {
		indices = indices.Clone()
		children = append(children, indices)
	}
	own := newOwner(newDestructor(obj.V, q, children...))
	return track(&VertexArray{
		own:        own,
		obj:        obj,
		attributes: attributes,
		indices:    indices,
	}, own)
}

func (v *VertexArray) ID() uint { return v.obj.V }

// Attributes returns the attribute accessors by slot.
func (v *VertexArray) Attributes() [MaxAttributes]*Accessor { return v.attributes }

// Indices returns the index accessor, or nil.
func (v *VertexArray) Indices() *Accessor { return v.indices }

func (v *VertexArray) Clone() *VertexArray {
	v.own.mustLive()
	c := *v
	c.own = newOwner(v.own.d)
	return track(&c, c.own)
}

func (v *VertexArray) Release() { v.own.release() }

func (v *VertexArray) Equal(o *VertexArray) bool { return v.obj == o.obj }

func (v *VertexArray) String() string {
	return fmt.Sprintf("VertexArray(%d)", v.obj.V)
}
