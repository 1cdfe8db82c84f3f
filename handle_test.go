// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"bytes"
	"log/slog"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDestructorExactlyOnce(t *testing.T) {
	q := newReleaseQueue(4)
	d := newDestructor(7, q)
	a := newOwner(d)
	b := newOwner(d)
	a.release()
	a.release()
	assert.Zero(t, q.len(), "released while an owner is live")
	b.release()
	id, ok := q.next()
	require.True(t, ok)
	assert.Equal(t, uint(7), id)
	b.release()
	assert.Zero(t, q.len())
}

func TestDestructorIDZero(t *testing.T) {
	q := newReleaseQueue(4)
	newOwner(newDestructor(0, q)).release()
	assert.Zero(t, q.len())
}

func TestDeferredRelease(t *testing.T) {
	f, fake := newTestFactory(t)
	buf := f.Buffer(BufferArray, StaticDraw)
	n := buf.ID()
	c := buf.Clone()
	assert.True(t, c.Equal(buf))

	buf.Release()
	assert.Zero(t, f.Pending().Buffers)
	c.Release()
	assert.Equal(t, 1, f.Pending().Buffers)
	// Not deleted until the factory collects.
	assert.Contains(t, fake.Live("buffer"), n)

	fake.Reset()
	next := f.Buffer(BufferArray, StaticDraw)
	assert.Equal(t, []uint{n}, fake.Deleted("buffer"))
	assert.Equal(t, []string{"DeleteBuffer", "CreateBuffer"}, fake.Names())
	// The name is reused only after its deletion.
	assert.Equal(t, n, next.ID())
}

func TestUseAfterRelease(t *testing.T) {
	f, _ := newTestFactory(t)
	buf := f.Buffer(BufferArray, StaticDraw)
	buf.Release()
	assert.PanicsWithValue(t, ErrReleased, func() { buf.Clone() })
	assert.PanicsWithValue(t, ErrReleased, func() { f.InitializeBuffer(buf, []byte{1}) })
}

func TestHandleUniqueness(t *testing.T) {
	f, _ := newTestFactory(t)
	var bufs []*Buffer
	seen := map[uint]*destructor{}
	for i := 0; i < 16; i++ {
		b := f.Buffer(BufferArray, StaticDraw)
		bufs = append(bufs, b, b.Clone())
		if i%3 == 0 {
			b.Release()
		}
	}
	for _, b := range bufs {
		if b.own.released.Load() {
			continue
		}
		if d, ok := seen[b.ID()]; ok && d != b.own.d {
			t.Fatalf("live handles with id %d have distinct destructors", b.ID())
		}
		seen[b.ID()] = b.own.d
	}
}

func TestVertexArrayKeepsBuffers(t *testing.T) {
	f, fake := newTestFactory(t)
	buf, va := triangle(t, f)
	buf.Release()
	f.Collect()
	assert.Empty(t, fake.Deleted("buffer"))

	va.Release()
	f.Collect()
	assert.Equal(t, []uint{va.ID()}, fake.Deleted("vertexarray"))
	assert.Equal(t, []uint{buf.ID()}, fake.Deleted("buffer"))
}

func TestSamplerKeepsTexture(t *testing.T) {
	f, fake := newTestFactory(t)
	tex := f.Texture2(4, 4, false, Rgba8)
	s := tex.Sampler(SamplerParams{MinFilter: FilterNearest})
	assert.Equal(t, tex.ID(), s.ID())
	tex.Release()
	f.Collect()
	assert.Empty(t, fake.Deleted("texture"))
	s.Release()
	f.Collect()
	assert.Equal(t, []uint{tex.ID()}, fake.Deleted("texture"))
}

func TestFramebufferKeepsAttachments(t *testing.T) {
	f, fake := newTestFactory(t)
	tex := f.Texture2(4, 4, false, Rgba8)
	depth := f.Renderbuffer(4, 4, 1, Depth24)
	fb := f.Framebuffer(4, 4, [MaxColorAttachments]Attachment{TextureAttachment(tex)}, RenderbufferAttachment(depth))
	tex.Release()
	depth.Release()
	f.Collect()
	assert.Empty(t, fake.Deleted("texture"))
	assert.Empty(t, fake.Deleted("renderbuffer"))

	fb.Release()
	f.Collect()
	assert.Equal(t, []uint{fb.ID()}, fake.Deleted("framebuffer"))
	assert.Equal(t, []uint{tex.ID()}, fake.Deleted("texture"))
	assert.Equal(t, []uint{depth.ID()}, fake.Deleted("renderbuffer"))
}

func TestReleaseFromGoroutines(t *testing.T) {
	f, fake := newTestFactory(t)
	const n = 100
	bufs := make([]*Buffer, n)
	for i := range bufs {
		bufs[i] = f.Buffer(BufferArray, StaticDraw)
	}
	var wg sync.WaitGroup
	for _, b := range bufs {
		wg.Add(1)
		go func(b *Buffer) {
			defer wg.Done()
			c := b.Clone()
			b.Release()
			c.Release()
		}(b)
	}
	wg.Wait()
	assert.Equal(t, n, f.Pending().Buffers)
	f.Collect()
	assert.Len(t, fake.Deleted("buffer"), n)
	assert.Empty(t, fake.Live("buffer"))
}

func TestCleanupReleasesUnreachable(t *testing.T) {
	f, fake := newTestFactory(t)
	func() {
		f.Buffer(BufferArray, StaticDraw)
	}()
	deadline := time.Now().Add(5 * time.Second)
	for f.Pending().Buffers == 0 {
		if time.Now().After(deadline) {
			t.Fatal("unreachable buffer was not released")
		}
		runtime.GC()
		time.Sleep(time.Millisecond)
	}
	f.Collect()
	assert.Len(t, fake.Deleted("buffer"), 1)
}

func TestQueueOverflowWarns(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })
	var out bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&out, nil)))

	f, fake := newTestFactory(t, WithQueueCapacity(1))
	a := f.Buffer(BufferArray, StaticDraw)
	b := f.Buffer(BufferArray, StaticDraw)
	a.Release()
	b.Release()
	assert.Equal(t, uint64(1), f.Pending().Dropped)

	f.Collect()
	assert.Equal(t, []uint{a.ID()}, fake.Deleted("buffer"))
	assert.Contains(t, out.String(), "release queue full")

	// The warning is reported once per overflow.
	out.Reset()
	f.Collect()
	assert.NotContains(t, out.String(), "release queue full")
}
