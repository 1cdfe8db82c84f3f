// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quadgl/gpu/internal/gltest"
)

// onThread runs fn on a goroutine locked to its own OS thread.
func onThread(fn func()) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		runtime.LockOSThread()
		// Exiting a locked goroutine terminates its thread, so the
		// thread is never reused by another test.
		fn()
	}()
	<-done
}

func TestThreadCheck(t *testing.T) {
	var f *Factory
	onThread(func() {
		f = NewFactory(gltest.New(), &testContext{width: 1, height: 1}, WithThreadCheck(true))
		assert.NotPanics(t, func() { f.Buffer(BufferArray, StaticDraw) })
	})
	var v any
	onThread(func() {
		v = panicValue(func() { f.Buffer(BufferArray, StaticDraw) })
	})
	require.IsType(t, &ThreadError{}, v)
	err := v.(*ThreadError)
	assert.NotEqual(t, err.Want, err.Got)
}

func TestThreadCheckDisabled(t *testing.T) {
	var f *Factory
	onThread(func() {
		f = NewFactory(gltest.New(), &testContext{width: 1, height: 1})
	})
	onThread(func() {
		assert.NotPanics(t, func() { f.Buffer(BufferArray, StaticDraw) })
	})
}
