// SPDX-License-Identifier: Unlicense OR MIT

package gpu

// Option configures a Factory during creation.
//
// Example:
//
//	f := gpu.NewFactory(funcs, window,
//		gpu.WithErrorChecks(false),
//		gpu.WithQueueCapacity(4096),
//	)
type Option func(*options)

type options struct {
	queueCapacity int
	errorChecks   bool
	trace         bool
	threadCheck   bool
}

func defaultOptions() options {
	return options{
		queueCapacity: defaultQueueCapacity,
		errorChecks:   true,
	}
}

// WithQueueCapacity sets the capacity of each deferred release queue.
// Release requests beyond the capacity are dropped and the driver
// object leaks. Values below 1 are ignored.
func WithQueueCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.queueCapacity = n
		}
	}
}

// WithErrorChecks controls whether glGetError is queried after driver
// calls. Checks are on by default.
func WithErrorChecks(enable bool) Option {
	return func(o *options) {
		o.errorChecks = enable
	}
}

// WithTrace logs every checked driver call at debug level.
func WithTrace(enable bool) Option {
	return func(o *options) {
		o.trace = enable
	}
}

// WithThreadCheck makes every Factory operation verify that it runs on
// the OS thread that created the Factory. The caller is expected to
// have locked that goroutine to its thread with runtime.LockOSThread.
func WithThreadCheck(enable bool) Option {
	return func(o *options) {
		o.threadCheck = enable
	}
}
