// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"fmt"

	"github.com/quadgl/gpu/internal/gl"
)

// Buffer creates an empty buffer. Storage is allocated by
// InitializeBuffer.
func (f *Factory) Buffer(kind BufferKind, usage Usage) *Buffer {
	f.Collect()
	obj := f.funcs.CreateBuffer()
	f.check("glGenBuffers")
	Logger().Debug("gpu: created buffer", "id", obj.V, "kind", kind)
	return newBuffer(obj, f.queues[catBuffers], kind, usage)
}

// bindForUpload binds b to its target with no vertex array bound, so
// index buffer updates cannot change a vertex array.
func (f *Factory) bindForUpload(b *Buffer) gl.Enum {
	f.state.bindVertexArray(f.funcs, gl.VertexArray{})
	f.check("glBindVertexArray")
	target := b.kind.target()
	f.state.bindBuffer(f.funcs, target, b.obj)
	f.check("glBindBuffer")
	return target
}

// InitializeBuffer replaces the storage of b with a copy of data.
func (f *Factory) InitializeBuffer(b *Buffer, data []byte) {
	f.checkThread()
	b.own.mustLive()
	target := f.bindForUpload(b)
	f.funcs.BufferData(target, len(data), b.usage.glEnum(), data)
	f.check("glBufferData")
	b.size.Store(int64(len(data)))
}

// OverwriteBuffer copies data into the byte range of s. The buffer
// must have been initialized large enough to hold the range.
func (f *Factory) OverwriteBuffer(s Slice, data []byte) {
	f.checkThread()
	s.Buffer.own.mustLive()
	if len(data) < s.Length {
		panic(fmt.Errorf("gpu: %d bytes of data for a %d byte slice", len(data), s.Length))
	}
	target := f.bindForUpload(s.Buffer)
	f.funcs.BufferSubData(target, s.Offset, data[:s.Length])
	f.check("glBufferSubData")
}

// VertexArray records the attribute layout and index buffer in a new
// vertex array object. Changing an Accessor afterwards has no effect on
// the vertex array.
func (f *Factory) VertexArray(attributes [MaxAttributes]*Accessor, indices *Accessor) *VertexArray {
	f.Collect()
	for _, a := range attributes {
		if a != nil {
			a.buffer.own.mustLive()
		}
	}
	obj := f.funcs.CreateVertexArray()
	f.check("glGenVertexArrays")
	f.state.bindVertexArray(f.funcs, obj)
	f.check("glBindVertexArray")
	if indices != nil {
		indices.buffer.own.mustLive()
		// Binding the element array buffer while the vertex array is bound
		// stores it in the vertex array.
		f.funcs.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, indices.buffer.obj)
		f.check("glBindBuffer")
	}
	for i, a := range attributes {
		if a == nil {
			continue
		}
		f.state.bindBuffer(f.funcs, gl.ARRAY_BUFFER, a.buffer.obj)
		f.check("glBindBuffer")
		f.funcs.VertexAttribPointer(gl.Attrib(i), a.format.Size(), a.format.dataType(), a.format.Norm(), a.stride, a.offset)
		f.check("glVertexAttribPointer")
		f.funcs.EnableVertexAttribArray(gl.Attrib(i))
		f.check("glEnableVertexAttribArray")
	}
	f.state.bindVertexArray(f.funcs, gl.VertexArray{})
	f.check("glBindVertexArray")
	Logger().Debug("gpu: created vertex array", "id", obj.V)
	return newVertexArray(obj, f.queues[catVertexArrays], attributes, indices)
}
