package obsub

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
)

// ErrNotConnected is returned by [Signal.Disconnect] when the handler is not
// currently registered.
var ErrNotConnected = errors.New("handler not connected")

// Handler is a function registered to run after an event's body. It receives
// the same arguments the event was emitted with. A non-nil error stops the
// dispatch: handlers registered after this one do not run for that emission,
// and the error is returned to the emitter as-is.
type Handler[A any] func(args A) error

// Handlers is the ordered handler list for one (instance, event) pair. Embed
// one Handlers field in the owning type per declared event; the zero value is
// an empty list. The field belongs to the instance — signals only reference
// it — and all mutation goes through [Signal.Connect] and [Signal.Disconnect].
type Handlers[A any] struct {
	fns []Handler[A]
}

// Descriptor declares a method of T as an event with argument struct A and
// result R. Descriptors are built once with [New], typically as a package
// level var next to the owning type, and are immutable afterwards.
type Descriptor[T, A, R any] struct {
	name     string
	base     func(T, A) (R, error)
	handlers func(T) *Handlers[A]
}

// New declares an event. base is the event's own body: it runs before any
// handler on every emission and its result is the emission's result. handlers
// locates the [Handlers] field embedded in T that backs this event. name only
// decorates errors.
func New[T, A, R any](name string, base func(T, A) (R, error), handlers func(T) *Handlers[A]) *Descriptor[T, A, R] {
	return &Descriptor[T, A, R]{name: name, base: base, handlers: handlers}
}

// Bind produces the signal for one instance. Every call builds a fresh
// [Signal], but all signals for the same instance share that instance's
// handler list, so a handler connected through one is seen by all of them.
// The signal references the instance; a reachable signal keeps its instance
// alive.
func (d *Descriptor[T, A, R]) Bind(instance T) *Signal[A, R] {
	return &Signal[A, R]{
		name:     d.name,
		base:     func(args A) (R, error) { return d.base(instance, args) },
		handlers: d.handlers(instance),
	}
}

// Emit invokes the event on instance without binding first.
// d.Emit(x, args) behaves exactly like d.Bind(x).Emit(args).
func (d *Descriptor[T, A, R]) Emit(instance T, args A) (R, error) {
	return d.Bind(instance).Emit(args)
}

// Signal is the per-instance face of an event: the event's body already bound
// to one instance, paired with that instance's handler list. Signals are
// cheap, transient views; see [Descriptor.Bind].
type Signal[A, R any] struct {
	name     string
	base     func(A) (R, error)
	handlers *Handlers[A]
}

// Connect registers h to run on every emission, after the handlers connected
// before it. There is no de-duplication: connecting the same handler twice
// registers it twice, and it runs twice per emission.
func (s *Signal[A, R]) Connect(h Handler[A]) {
	s.handlers.fns = append(s.handlers.fns, h)
}

// Disconnect removes the first registered handler backed by the same function
// as h. If none is, it returns an error wrapping [ErrNotConnected] and leaves
// the list unchanged.
//
// Function identity is the only equality Go offers for funcs, so closures
// sharing one body and one set of captured variables count as the same
// handler.
func (s *Signal[A, R]) Disconnect(h Handler[A]) error {
	target := reflect.ValueOf(h).Pointer()
	for i, fn := range s.handlers.fns {
		if reflect.ValueOf(fn).Pointer() == target {
			s.handlers.fns = slices.Delete(s.handlers.fns, i, i+1)
			return nil
		}
	}
	return fmt.Errorf("%s: %w", s.name, ErrNotConnected)
}

// Emit runs the event's body, then every handler registered at the moment the
// body returned, in registration order, each with the same args. The body's
// result is the emission's result.
//
// A failing body skips all handlers; a failing handler skips the handlers
// after it. Either error is returned unmodified, with the zero R. Dispatch
// iterates over a snapshot of the handler list, so handlers connecting or
// disconnecting mid-dispatch take effect from the next emission.
func (s *Signal[A, R]) Emit(args A) (R, error) {
	var zero R
	result, err := s.base(args)
	if err != nil {
		return zero, err
	}
	for _, fn := range slices.Clone(s.handlers.fns) {
		if err := fn(args); err != nil {
			return zero, err
		}
	}
	return result, nil
}
