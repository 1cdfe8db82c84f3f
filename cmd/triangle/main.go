// SPDX-License-Identifier: Unlicense OR MIT

// Command triangle draws a rotating triangle in a window.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/quadgl/gpu"
	"github.com/quadgl/gpu/glcore"
)

var (
	width   = flag.Int("width", 640, "window width")
	height  = flag.Int("height", 480, "window height")
	vsync   = flag.Bool("vsync", true, "synchronize buffer swaps with the display")
	verbose = flag.Bool("v", false, "log object lifecycle and driver calls")
)

const vertexSource = `#version 330 core
layout(location = 0) in vec3 position;
layout(location = 1) in vec3 color;
uniform Transform {
	mat4 model;
};
out vec3 vcolor;
void main() {
	vcolor = color;
	gl_Position = model * vec4(position, 1.0);
}
`

const fragmentSource = `#version 330 core
in vec3 vcolor;
out vec4 fragColor;
void main() {
	fragColor = vec4(vcolor, 1.0);
}
`

func init() {
	// The context and every Factory call stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	flag.Parse()
	if err := mainErr(); err != nil {
		fmt.Fprintf(os.Stderr, "triangle: %v\n", err)
		os.Exit(1)
	}
}

func mainErr() error {
	if *verbose {
		gpu.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	if err := glfw.Init(); err != nil {
		return err
	}
	defer glfw.Terminate()
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	win, err := glfw.CreateWindow(*width, *height, "triangle", nil, nil)
	if err != nil {
		return err
	}
	defer win.Destroy()
	win.MakeContextCurrent()
	if *vsync {
		glfw.SwapInterval(1)
	}

	funcs, err := glcore.Load(glfw.GetProcAddress)
	if err != nil {
		return err
	}
	f := gpu.NewFactory(funcs, win, gpu.WithTrace(*verbose), gpu.WithThreadCheck(true))

	vertices := f.Buffer(gpu.BufferArray, gpu.StaticDraw)
	f.InitializeBuffer(vertices, gpu.Bytes([]float32{
		// position       color
		-0.6, -0.5, 0, 1, 0, 0,
		0.6, -0.5, 0, 0, 1, 0,
		0, 0.6, 0, 0, 0, 1,
	}))
	var attrs [gpu.MaxAttributes]*gpu.Accessor
	attrs[0] = gpu.NewAccessor(vertices, gpu.Float(32, 3), 0, 24)
	attrs[1] = gpu.NewAccessor(vertices, gpu.Float(32, 3), 12, 24)
	va := f.VertexArray(attrs, nil)
	// The vertex array keeps the buffer alive.
	vertices.Release()
	attrs[0].Release()
	attrs[1].Release()
	defer va.Release()

	vs := f.Shader(gpu.VertexShader, vertexSource)
	fs := f.Shader(gpu.FragmentShader, fragmentSource)
	var iface gpu.Interface
	iface.UniformBlocks[0] = gpu.Required("Transform")
	prog := f.Program(vs, fs, &iface)
	vs.Release()
	fs.Release()
	defer prog.Release()

	transform := f.Buffer(gpu.BufferUniform, gpu.StreamDraw)
	defer transform.Release()
	identity := mgl32.Ident4()
	f.InitializeBuffer(transform, gpu.Bytes(identity[:]))

	inv := &gpu.Invocation{Program: prog}
	inv.Uniforms[0] = transform
	fb := f.DefaultFramebuffer()
	state := &gpu.State{Culling: gpu.CullNone, DepthTest: gpu.DepthOff}
	call := gpu.DrawCall{Kind: gpu.Arrays, Primitive: gpu.Triangles, Count: 3}
	bg := [4]float32{0.1, 0.1, 0.12, 1}

	for !win.ShouldClose() {
		f.Collect()
		model := mgl32.HomogRotate3DZ(float32(glfw.GetTime()))
		if a := fb.AspectRatio(); a > 0 {
			model = mgl32.Scale3D(1/a, 1, 1).Mul4(model)
		}
		f.OverwriteBuffer(transform.Whole(), gpu.Bytes(model[:]))
		f.Clear(fb, gpu.ClearOp{Color: &bg})
		f.Draw(fb, state, va, call, inv)
		win.SwapBuffers()
		glfw.PollEvents()
	}
	return nil
}
