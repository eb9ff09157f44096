// Package obsub implements the observer pattern for methods. A method
// declared as an event keeps its ordinary behavior, but every call also
// notifies handler functions registered on the specific instance, in
// registration order, with the arguments the call was made with.
//
// # Declaring an event
//
// An event is declared once, next to its owning type. The owning type embeds
// one [Handlers] field per event (the zero value is an empty list), and the
// declaration names the event, gives it a body, and points at that field:
//
//	type Player struct {
//		Name     string
//		progress obsub.Handlers[ProgressArgs]
//	}
//
//	type ProgressArgs struct {
//		First, Second string
//	}
//
//	var Progress = obsub.New("progress",
//		func(p *Player, a ProgressArgs) (struct{}, error) {
//			fmt.Println("Doing something...")
//			return struct{}{}, nil
//		},
//		func(p *Player) *obsub.Handlers[ProgressArgs] { return &p.progress },
//	)
//
// The argument struct is the event's signature: the body and every handler
// share it, so a call that does not conform simply does not compile.
//
// # Connecting handlers
//
// [Descriptor.Bind] yields the signal for one instance. Handlers connected
// there fire for that instance only:
//
//	foo := &Player{Name: "Foo"}
//	sig := Progress.Bind(foo)
//	sig.Connect(func(a ProgressArgs) error {
//		fmt.Printf("%s %s and %s!\n", a.First, foo.Name, a.Second)
//		return nil
//	})
//
//	sig.Emit(ProgressArgs{First: "Hello", Second: "World"})
//	// Doing something...
//	// Hello Foo and World!
//
// Handlers run after the event's own body, each with the arguments the event
// was emitted with. The first error, whether from the body or from a handler,
// stops the dispatch and is returned to the emitter unchanged; the body's
// error skips all handlers.
//
// # Bound and unbound emission
//
// Every Bind for one instance shares that instance's handler list, so an
// event may just as well be emitted without holding a signal:
//
//	Progress.Emit(foo, ProgressArgs{First: "Hi", Second: "Z"})
//
// which is also how a type triggers its own events from inside other methods.
//
// The package is not safe for concurrent use: emitting and mutating one
// instance's handler list from multiple goroutines needs external
// synchronization. Within a single goroutine, handlers may freely connect and
// disconnect during a dispatch; such changes apply from the next emission.
package obsub
