// Package script embeds a JavaScript runtime that drives the presentation
// engine. It uses the goja engine (pure Go ES5.1+ implementation): scripts
// get a console, scheduler-backed timers, and the scrim global installed by
// an OverlayBinder.
package script

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dop251/goja"

	"github.com/scrimui/scrim/sched"
)

// Runtime wraps a goja JavaScript runtime. Timers run on the injected
// scheduler, so the embedding event loop decides when they fire.
type Runtime struct {
	vm      *goja.Runtime
	sched   *sched.Scheduler
	console *goja.Object
	out     io.Writer
	mu      sync.Mutex
	errors  []error
	onError func(error)
}

// NewRuntime creates a runtime whose timers run on the given scheduler.
// Console output goes to out; nil means standard output.
func NewRuntime(scheduler *sched.Scheduler, out io.Writer) *Runtime {
	if scheduler == nil {
		scheduler = sched.New(nil)
	}
	if out == nil {
		out = os.Stdout
	}

	r := &Runtime{
		vm:     goja.New(),
		sched:  scheduler,
		out:    out,
		errors: make([]error, 0),
	}

	r.setupConsole()
	r.setupTimers()

	return r
}

// VM returns the underlying goja runtime.
func (r *Runtime) VM() *goja.Runtime {
	return r.vm
}

// Scheduler returns the scheduler the runtime's timers run on.
func (r *Runtime) Scheduler() *sched.Scheduler {
	return r.sched
}

// SetOnError sets a callback for JavaScript errors.
func (r *Runtime) SetOnError(handler func(error)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onError = handler
}

// Execute runs JavaScript code and returns the result.
func (r *Runtime) Execute(code string) (result goja.Value, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Recover from panics in the goja parser/runtime
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("script execution panic: %v", p)
			r.errors = append(r.errors, err)
			if r.onError != nil {
				r.onError(err)
			}
		}
	}()

	result, err = r.vm.RunString(code)
	if err != nil {
		r.errors = append(r.errors, err)
		if r.onError != nil {
			r.onError(err)
		}
	}
	return result, err
}

// ExecuteScript runs JavaScript code under a source name for error
// reporting. Failures are recorded and do not stop later scripts.
func (r *Runtime) ExecuteScript(code, src string) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("script compilation panic in %s: %v", src, p)
			r.errors = append(r.errors, err)
			if r.onError != nil {
				r.onError(err)
			}
		}
	}()

	program, err := goja.Compile(src, code, false)
	if err != nil {
		r.errors = append(r.errors, err)
		if r.onError != nil {
			r.onError(err)
		}
		return err
	}

	_, err = r.vm.RunProgram(program)
	if err != nil {
		r.errors = append(r.errors, err)
		if r.onError != nil {
			r.onError(err)
		}
	}
	return err
}

// Errors returns all errors that occurred during execution.
func (r *Runtime) Errors() []error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]error{}, r.errors...)
}

// ClearErrors clears the error list.
func (r *Runtime) ClearErrors() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = r.errors[:0]
}

// ProcessTimers runs any timers that have come due and returns how many
// fired.
func (r *Runtime) ProcessTimers() int {
	return r.sched.Process()
}

// HasPendingWork reports whether any timer is still scheduled.
func (r *Runtime) HasPendingWork() bool {
	return r.sched.HasPending()
}

// callFunction invokes a JavaScript callback from Go, recording failures
// instead of propagating them.
func (r *Runtime) callFunction(fn goja.Callable, args ...goja.Value) {
	defer func() {
		if p := recover(); p != nil {
			r.recordError(fmt.Errorf("callback panic: %v", p))
		}
	}()
	if _, err := fn(goja.Undefined(), args...); err != nil {
		r.recordError(err)
	}
}

func (r *Runtime) recordError(err error) {
	r.mu.Lock()
	r.errors = append(r.errors, err)
	handler := r.onError
	r.mu.Unlock()
	if handler != nil {
		handler(err)
	}
}

// setupConsole creates the console object with log, warn, error, etc.
func (r *Runtime) setupConsole() {
	console := r.vm.NewObject()

	console.Set("log", func(call goja.FunctionCall) goja.Value {
		fmt.Fprintln(r.out, formatArgs(call.Arguments))
		return goja.Undefined()
	})

	console.Set("warn", func(call goja.FunctionCall) goja.Value {
		fmt.Fprintln(r.out, "[WARN]", formatArgs(call.Arguments))
		return goja.Undefined()
	})

	console.Set("error", func(call goja.FunctionCall) goja.Value {
		fmt.Fprintln(r.out, "[ERROR]", formatArgs(call.Arguments))
		return goja.Undefined()
	})

	console.Set("info", func(call goja.FunctionCall) goja.Value {
		fmt.Fprintln(r.out, "[INFO]", formatArgs(call.Arguments))
		return goja.Undefined()
	})

	console.Set("debug", func(call goja.FunctionCall) goja.Value {
		fmt.Fprintln(r.out, "[DEBUG]", formatArgs(call.Arguments))
		return goja.Undefined()
	})

	console.Set("assert", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) == 0 || !call.Arguments[0].ToBoolean() {
			args := "Assertion failed"
			if len(call.Arguments) > 1 {
				args = formatArgs(call.Arguments[1:])
			}
			fmt.Fprintln(r.out, "[ASSERT]", args)
		}
		return goja.Undefined()
	})

	r.console = console
	r.vm.Set("console", console)
}

// setupTimers creates setTimeout, setInterval, clearTimeout, clearInterval.
func (r *Runtime) setupTimers() {
	r.vm.Set("setTimeout", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 1 {
			return goja.Undefined()
		}

		callback, ok := goja.AssertFunction(call.Arguments[0])
		if !ok {
			return goja.Undefined()
		}

		delay := int64(0)
		if len(call.Arguments) > 1 {
			delay = call.Arguments[1].ToInteger()
		}
		if delay < 0 {
			delay = 0
		}

		var args []goja.Value
		if len(call.Arguments) > 2 {
			args = call.Arguments[2:]
		}

		id := r.sched.AfterFunc(time.Duration(delay)*time.Millisecond, func() {
			r.callFunction(callback, args...)
		})
		return r.vm.ToValue(id)
	})

	r.vm.Set("setInterval", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 1 {
			return goja.Undefined()
		}

		callback, ok := goja.AssertFunction(call.Arguments[0])
		if !ok {
			return goja.Undefined()
		}

		delay := int64(0)
		if len(call.Arguments) > 1 {
			delay = call.Arguments[1].ToInteger()
		}
		// Minimum interval of 4ms per HTML spec
		if delay < 4 {
			delay = 4
		}

		var args []goja.Value
		if len(call.Arguments) > 2 {
			args = call.Arguments[2:]
		}

		id := r.sched.EveryFunc(time.Duration(delay)*time.Millisecond, func() {
			r.callFunction(callback, args...)
		})
		return r.vm.ToValue(id)
	})

	clear := func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 1 {
			return goja.Undefined()
		}
		r.sched.Cancel(int(call.Arguments[0].ToInteger()))
		return goja.Undefined()
	}
	r.vm.Set("clearTimeout", clear)
	r.vm.Set("clearInterval", clear)

	// requestAnimationFrame approximates a frame as one 16ms timeout. The
	// timestamp comes from the scheduler's clock so manual clocks stay
	// deterministic.
	r.vm.Set("requestAnimationFrame", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 1 {
			return goja.Undefined()
		}

		callback, ok := goja.AssertFunction(call.Arguments[0])
		if !ok {
			return goja.Undefined()
		}

		id := r.sched.AfterFunc(16*time.Millisecond, func() {
			timestamp := float64(r.sched.Clock().Now().UnixNano()) / 1e6
			r.callFunction(callback, r.vm.ToValue(timestamp))
		})
		return r.vm.ToValue(id)
	})

	r.vm.Set("cancelAnimationFrame", clear)
}

// formatArgs formats function call arguments for console output.
func formatArgs(args []goja.Value) string {
	if len(args) == 0 {
		return ""
	}

	result := ""
	for i, arg := range args {
		if i > 0 {
			result += " "
		}
		result += formatValue(arg)
	}
	return result
}

// formatValue formats a single value for output.
func formatValue(v goja.Value) string {
	if v == nil || goja.IsUndefined(v) {
		return "undefined"
	}
	if goja.IsNull(v) {
		return "null"
	}
	return v.String()
}
