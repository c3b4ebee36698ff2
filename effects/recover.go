package effects

import "context"

// Recover runs m and, if one of its effects fails, continues with fallback(cause)
// instead of failing the run. Effects already performed inside m are not undone.
func Recover[A any](m Node[A], fallback func(error) Node[A]) Node[A] {
	return Node[A]{n: recoverNode{
		source: m.n,
		fallback: func(err error) node {
			return fallback(err).n
		},
	}}
}

// Result is the outcome of an attempted computation.
type Result[A any] struct {
	Value A
	Err   error
}

func (r Result[A]) Ok() bool {
	return r.Err == nil
}

// Attempt turns a failure of m into a value, so the run continues either way.
func Attempt[A any](m Node[A]) Node[Result[A]] {
	return Recover(
		Map(m, func(a A) Result[A] {
			return Result[A]{Value: a}
		}),
		func(err error) Node[Result[A]] {
			return Pure(Result[A]{Err: err})
		},
	)
}

// RaiseIfErr lifts a fallible function into an effect failing with its error.
func RaiseIfErr[A any](fn func() (A, error)) Node[A] {
	return Delay(func(context.Context) (A, error) {
		return fn()
	})
}
