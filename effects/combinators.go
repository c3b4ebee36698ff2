package effects

import (
	"iter"
	"slices"

	"go.uber.org/multierr"
)

// Pair is the result of Product.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Skip runs m and forgets its result.
func Skip[A any](m Node[A]) Node[Unit] {
	return Map(m, func(A) Unit { return Unit{} })
}

// When runs m only if condition holds, keeping the branch inside the graph.
func When[A any](condition bool, m Node[A]) Node[Unit] {
	if condition {
		return Skip(m)
	}
	return Pure(Unit{})
}

// Sequence runs nodes in order. The first failure aborts the rest.
func Sequence(nodes ...Node[Unit]) Node[Unit] {
	result := Pure(Unit{})
	for i := len(nodes) - 1; i >= 0; i-- {
		result = Then(nodes[i], result)
	}
	return result
}

// SequenceAll runs every node in order even when some fail, then fails with
// all collected failures combined, or succeeds if none failed.
func SequenceAll(nodes ...Node[Unit]) Node[Unit] {
	return Suspend(func() Node[Unit] {
		var errs error
		steps := make([]Node[Unit], len(nodes))
		for i, n := range nodes {
			steps[i] = Recover(n, func(err error) Node[Unit] {
				errs = multierr.Append(errs, err)
				return Pure(Unit{})
			})
		}
		return FlatMap(Sequence(steps...), func(Unit) Node[Unit] {
			if errs != nil {
				return Fail[Unit](errs)
			}
			return Pure(Unit{})
		})
	})
}

// maxReplicatePrealloc bounds the up-front allocation of Replicate; n comes
// from the caller and the run may fail long before n results exist.
const maxReplicatePrealloc = 1024

// Replicate runs m exactly n times and collects the results in order.
// For n <= 0 it yields an empty slice and m never runs.
func Replicate[A any](n int, m Node[A]) Node[[]A] {
	if n <= 0 {
		return Pure([]A{})
	}
	return Suspend(func() Node[[]A] {
		out := make([]A, 0, min(n, maxReplicatePrealloc))
		var next func(A) Node[[]A]
		next = func(a A) Node[[]A] {
			out = append(out, a)
			if len(out) == n {
				return Pure(out)
			}
			return FlatMap(m, next)
		}
		return FlatMap(m, next)
	})
}

// Map2 runs na then nb and combines both results with f.
func Map2[A, B, C any](na Node[A], nb Node[B], f func(A, B) C) Node[C] {
	return FlatMap(na, func(a A) Node[C] {
		return Map(nb, func(b B) C {
			return f(a, b)
		})
	})
}

// Product runs na then nb and pairs their results.
func Product[A, B any](na Node[A], nb Node[B]) Node[Pair[A, B]] {
	return Map2(na, nb, func(a A, b B) Pair[A, B] {
		return Pair[A, B]{First: a, Second: b}
	})
}

// Fold threads an accumulator through step for each element, strictly in order.
// step is called for an element only after the previous step's effect succeeded.
func Fold[A, B any](elements []A, initial B, step func(B, A) Node[B]) Node[B] {
	elements = slices.Clone(elements)
	var loop func(i int, acc B) Node[B]
	loop = func(i int, acc B) Node[B] {
		if i == len(elements) {
			return Pure(acc)
		}
		return FlatMap(step(acc, elements[i]), func(next B) Node[B] {
			return loop(i+1, next)
		})
	}
	return Suspend(func() Node[B] {
		return loop(0, initial)
	})
}

// FoldSeq is Fold over a lazily produced sequence. The sequence is pulled one
// element at a time as an effect, and released when the fold ends or fails.
func FoldSeq[A, B any](elements iter.Seq[A], initial B, step func(B, A) Node[B]) Node[B] {
	return Suspend(func() Node[B] {
		next, stop := iter.Pull(elements)
		pull := Eval(func() Pair[A, bool] {
			a, ok := next()
			return Pair[A, bool]{First: a, Second: ok}
		})

		var loop func(acc B) Node[B]
		loop = func(acc B) Node[B] {
			return FlatMap(pull, func(p Pair[A, bool]) Node[B] {
				if !p.Second {
					stop()
					return Pure(acc)
				}
				return FlatMap(stepOrStop(step, acc, p.First, stop), loop)
			})
		}
		return Recover(loop(initial), func(err error) Node[B] {
			stop()
			return Fail[B](err)
		})
	})
}

// stepOrStop builds the next fold step, releasing the pulled sequence if
// building it panics.
func stepOrStop[A, B any](step func(B, A) Node[B], acc B, a A, stop func()) Node[B] {
	panicked := true
	defer func() {
		if panicked {
			stop()
		}
	}()
	next := step(acc, a)
	panicked = false
	return next
}

// ForEach runs f for each element in order, discarding results.
func ForEach[A, B any](elements []A, f func(A) Node[B]) Node[Unit] {
	return Fold(elements, Unit{}, func(_ Unit, e A) Node[Unit] {
		return Skip(f(e))
	})
}

// ForEachSeq is ForEach over a lazily produced sequence.
func ForEachSeq[A, B any](elements iter.Seq[A], f func(A) Node[B]) Node[Unit] {
	return FoldSeq(elements, Unit{}, func(_ Unit, e A) Node[Unit] {
		return Skip(f(e))
	})
}

// DoWhile runs body, then cond on its result, repeating while cond yields true.
// body always runs at least once.
func DoWhile[A any](body Node[A], cond func(A) Node[bool]) Node[Unit] {
	var loop Node[Unit]
	loop = FlatMap(body, func(a A) Node[Unit] {
		return FlatMap(cond(a), func(again bool) Node[Unit] {
			if again {
				return loop
			}
			return Pure(Unit{})
		})
	})
	return loop
}

// Forever repeats m until one of its effects fails. It never completes
// normally, so B is free for the caller to choose.
func Forever[B, A any](m Node[A]) Node[B] {
	var loop Node[B]
	loop = FlatMap(m, func(A) Node[B] {
		return loop
	})
	return loop
}
