// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"errors"
	"fmt"

	"github.com/quadgl/gpu/internal/gl"
)

// Faults reported by the Factory are unrecoverable and delivered by
// panicking with one of the error values below. Recover and inspect
// them with errors.As when a program needs to report them.

// ErrReleased is the panic value when a released handle is used.
var ErrReleased = errors.New("gpu: use of released handle")

// DriverError reports a non-zero glGetError code after a driver call.
type DriverError struct {
	Call string
	Code gl.Enum
}

func (e *DriverError) Error() string {
	return fmt.Sprintf("gpu: %s failed: %s", e.Call, gl.ErrorString(e.Code))
}

// CompileError reports a shader that failed to compile.
type CompileError struct {
	Kind ShaderKind
	Log  string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("gpu: %s shader compilation failed: %s", e.Kind, e.Log)
}

// LinkError reports a program that failed to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("gpu: program link failed: %s", e.Log)
}

// BindingError reports a required interface name the program lacks.
type BindingError struct {
	Kind string // "uniform block" or "sampler"
	Name string
}

func (e *BindingError) Error() string {
	return fmt.Sprintf("gpu: %s %s not found", e.Kind, e.Name)
}

// FramebufferError reports an incomplete framebuffer.
type FramebufferError struct {
	Status gl.Enum
}

func (e *FramebufferError) Error() string {
	return fmt.Sprintf("gpu: incomplete framebuffer (status 0x%x)", uint(e.Status))
}

// UnimplementedError reports a draw mode the Factory cannot dispatch.
type UnimplementedError struct {
	Mode DrawKind
}

func (e *UnimplementedError) Error() string {
	return fmt.Sprintf("gpu: %s draw calls are not implemented", e.Mode)
}

// ThreadError reports a Factory call from a thread other than the one
// that created it.
type ThreadError struct {
	Want, Got int
}

func (e *ThreadError) Error() string {
	return fmt.Sprintf("gpu: factory used from thread %d, created on thread %d", e.Got, e.Want)
}
