// Package effects describes effectful programs as values and runs them with a
// stack-safe interpreter.
//
// Effect-ive IO keeps side effects (terminal I/O, mutable cells, loops) out of
// business logic by turning each of them into a Node: an immutable description
// that does nothing until it is handed to Run.
//
// # What is a Node?
//
// A Node[A] is one of a closed set of variants:
//   - a completed value (Pure),
//   - a suspended external action (Delay, Eval, Fail),
//   - a sequencing of one Node into the next (FlatMap, Map, Then),
//   - a computation with a fallback for its failures (Recover, Attempt).
//
// Combinators such as Sequence, Replicate, Fold, ForEach, DoWhile and Forever
// only build larger graphs; nothing runs while building.
//
// # How does it run?
//
// Run walks the graph with a loop and a heap-allocated stack of pending
// continuations instead of recursive calls, so a loop of a million iterations
// uses as much native stack as a loop of one. Every suspended action runs
// exactly when it is reached, in order, on the calling goroutine.
//
// A failing action discards all pending continuations and the run returns a
// single *SuspendedEffectFailure wrapping the cause. Effects already performed
// stay performed.
//
// Primitive providers are registered via `WithXxxEffectHandler(ctx)` in the
// sub-packages (console, log) and reached by the suspended actions through the
// context given to Run.
//
// Example:
//
//	func greet(ctx context.Context) error {
//	    ctx, end := console.WithEffectHandler(ctx, console.NewTerminal(os.Stdin, os.Stdout))
//	    defer end()
//
//	    program := effects.FlatMap(console.ReadLine(), func(name string) effects.Node[effects.Unit] {
//	        return console.PrintLine("hello, " + name)
//	    })
//	    _, err := effects.Run(ctx, program)
//	    return err
//	}
package effects
