// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quadgl/gpu/internal/gl"
)

// indexOf returns the index of the first call to name at or after
// start, or -1.
func indexOf(names []string, start int, name string) int {
	for i := start; i < len(names); i++ {
		if names[i] == name {
			return i
		}
	}
	return -1
}

func texturedSetup(t *testing.T, f *Factory) (*VertexArray, *Invocation) {
	t.Helper()
	_, va := triangle(t, f)
	iface := &Interface{}
	iface.UniformBlocks[1] = Required("Transform")
	iface.Samplers[2] = Required("albedo")
	prog := linkProgram(t, f, blockVertex, samplerFragment, iface)

	ubo := f.Buffer(BufferUniform, DynamicDraw)
	f.InitializeBuffer(ubo, make([]byte, 64))
	tex := f.Texture2(4, 4, false, Rgba8)
	inv := &Invocation{Program: prog}
	inv.Uniforms[1] = ubo
	inv.Samplers[2] = tex.Sampler(SamplerParams{
		MagFilter: FilterNearest,
		MinFilter: FilterLinearMipmapLinear,
		WrapS:     WrapClampToEdge,
		WrapT:     WrapMirroredRepeat,
	})
	return va, inv
}

func TestDrawSequence(t *testing.T) {
	f, fake := newTestFactory(t)
	va, inv := texturedSetup(t, f)
	tex := f.Texture2(8, 8, false, Rgba8)
	fb := f.Framebuffer(8, 8, [MaxColorAttachments]Attachment{TextureAttachment(tex)}, Attachment{})

	fake.Reset()
	f.Draw(fb, &State{}, va, DrawCall{Kind: Arrays, Primitive: TriangleStrip, Count: 3}, inv)
	names := fake.Names()

	steps := []string{
		"BindFramebuffer",
		"Viewport",
		"Enable", // cull face
		"Enable", // depth test
		"BindVertexArray",
		"UseProgram",
		"BindBufferBase",
		"ActiveTexture",
		"BindTexture",
		"TexParameteri",
		"DrawArrays",
		"UseProgram",
		"BindVertexArray",
	}
	pos := 0
	for _, s := range steps {
		i := indexOf(names, pos, s)
		require.GreaterOrEqual(t, i, 0, "%s missing or out of order in %v", s, names)
		pos = i + 1
	}

	last := fake.Calls[len(fake.Calls)-2:]
	assert.Equal(t, []any{uint(0)}, last[0].Args)
	assert.Equal(t, []any{uint(0)}, last[1].Args)

	assert.Equal(t, []any{gl.Enum(gl.UNIFORM_BUFFER), 1, inv.Uniforms[1].ID()}, fake.Find("BindBufferBase")[0].Args)
	assert.Equal(t, []any{gl.Enum(gl.TEXTURE0 + 2)}, fake.Find("ActiveTexture")[0].Args)
	params := map[gl.Enum]int{}
	for _, c := range fake.Find("TexParameteri") {
		params[c.Args[1].(gl.Enum)] = c.Args[2].(int)
	}
	assert.Equal(t, map[gl.Enum]int{
		gl.TEXTURE_MAG_FILTER: gl.NEAREST,
		gl.TEXTURE_MIN_FILTER: gl.LINEAR_MIPMAP_LINEAR,
		gl.TEXTURE_WRAP_S:     gl.CLAMP_TO_EDGE,
		gl.TEXTURE_WRAP_T:     gl.MIRRORED_REPEAT,
	}, params)
	assert.Equal(t, []any{0, 0, 8, 8}, fake.Find("Viewport")[0].Args)
}

func TestDrawFixedFunctionState(t *testing.T) {
	f, fake := newTestFactory(t)
	_, va := triangle(t, f)
	prog := linkProgram(t, f, passVertex, passFragment, &Interface{})
	call := DrawCall{Kind: Arrays, Primitive: Lines, Count: 2}

	fake.Reset()
	f.Draw(f.DefaultFramebuffer(), &State{
		Culling:     CullNone,
		DepthTest:   DepthOff,
		PolygonMode: Line(2),
		Viewport:    image.Rect(10, 20, 110, 220),
	}, va, call, &Invocation{Program: prog})
	assert.Equal(t, []any{10, 20, 100, 200}, fake.Find("Viewport")[0].Args)
	assert.Equal(t, []any{gl.Enum(gl.FRONT_AND_BACK), gl.Enum(gl.LINE)}, fake.Find("PolygonMode")[0].Args)
	assert.Equal(t, []any{float32(2)}, fake.Find("LineWidth")[0].Args)
	assert.Zero(t, fake.Count("Enable"))
	// Culling and depth testing start disabled.
	assert.Zero(t, fake.Count("Disable"))

	fake.Reset()
	f.Draw(f.DefaultFramebuffer(), &State{
		FrontFace:   Clockwise,
		Culling:     CullFront,
		DepthTest:   DepthGreater,
		PolygonMode: Point(4),
	}, va, call, &Invocation{Program: prog})
	assert.Equal(t, 2, fake.Count("Enable"))
	assert.Equal(t, []any{gl.Enum(gl.FRONT)}, fake.Find("CullFace")[0].Args)
	assert.Equal(t, []any{gl.Enum(gl.CW)}, fake.Find("FrontFace")[0].Args)
	assert.Equal(t, []any{gl.Enum(gl.GREATER)}, fake.Find("DepthFunc")[0].Args)
	assert.Equal(t, []any{float32(4)}, fake.Find("PointSize")[0].Args)
	assert.Equal(t, []any{0, 0, 640, 480}, fake.Find("Viewport")[0].Args)

	fake.Reset()
	f.Draw(f.DefaultFramebuffer(), &State{Culling: CullNone, DepthTest: DepthOff}, va, call, &Invocation{Program: prog})
	assert.Equal(t, 2, fake.Count("Disable"))
}

func TestDrawElidesRedundantState(t *testing.T) {
	f, fake := newTestFactory(t)
	_, va := triangle(t, f)
	prog := linkProgram(t, f, passVertex, passFragment, &Interface{})
	draw := func() {
		f.Draw(f.DefaultFramebuffer(), &State{}, va, DrawCall{Kind: Arrays, Count: 3}, &Invocation{Program: prog})
	}
	draw()
	fake.Reset()
	draw()
	for _, name := range []string{"Viewport", "Enable", "CullFace", "FrontFace", "DepthFunc", "PolygonMode"} {
		assert.Zero(t, fake.Count(name), name)
	}

	f.InvalidateState()
	fake.Reset()
	draw()
	for _, name := range []string{"BindFramebuffer", "Viewport", "Enable", "CullFace", "FrontFace", "DepthFunc", "PolygonMode"} {
		assert.NotZero(t, fake.Count(name), name)
	}
}

func TestDrawReleasedHandle(t *testing.T) {
	f, _ := newTestFactory(t)
	_, va := triangle(t, f)
	prog := linkProgram(t, f, passVertex, passFragment, &Interface{})
	va.Release()
	assert.PanicsWithValue(t, ErrReleased, func() {
		f.Draw(f.DefaultFramebuffer(), &State{}, va, DrawCall{Kind: Arrays, Count: 3}, &Invocation{Program: prog})
	})
}
