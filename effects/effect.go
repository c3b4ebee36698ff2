package effects

import (
	"context"
	"fmt"
)

// Unit is the result of effects that produce nothing worth returning.
type Unit struct{}

// Kind names the variant a Node was built as.
type Kind uint8

const (
	// KindDone is a completed pure value with no pending work.
	KindDone Kind = iota
	// KindDelay is a suspended external action.
	KindDelay
	// KindFlatMap sequences one computation into the next.
	KindFlatMap
	// KindRecover runs a computation with a fallback for its failures.
	KindRecover
)

func (k Kind) String() string {
	switch k {
	case KindDone:
		return "done"
	case KindDelay:
		return "delay"
	case KindFlatMap:
		return "flatmap"
	case KindRecover:
		return "recover"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// node is the type-erased form walked by the interpreter.
// Only the variants below implement it.
type node interface {
	kind() Kind
}

type doneNode struct {
	value any
}

type delayNode struct {
	thunk func(context.Context) (any, error)
}

type flatMapNode struct {
	source node
	k      func(any) node
}

type recoverNode struct {
	source   node
	fallback func(error) node
}

func (doneNode) kind() Kind    { return KindDone }
func (delayNode) kind() Kind   { return KindDelay }
func (flatMapNode) kind() Kind { return KindFlatMap }
func (recoverNode) kind() Kind { return KindRecover }

// Node is an immutable description of a computation producing an A.
//
// Building a Node never performs an effect. The same Node may be embedded in
// several graphs or interpreted many times; each interpretation runs its
// embedded effects again. The zero Node behaves as Pure of the zero value.
type Node[A any] struct {
	n node
}

// Kind reports which variant the node was built as.
func (m Node[A]) Kind() Kind {
	if m.n == nil {
		return KindDone
	}
	return m.n.kind()
}

// Pure lifts an already available value into a Node.
func Pure[A any](a A) Node[A] {
	return Node[A]{n: doneNode{value: a}}
}

// Delay suspends an external action. The thunk is only ever invoked by the
// interpreter, with the context the run was started with.
func Delay[A any](thunk func(context.Context) (A, error)) Node[A] {
	return Node[A]{n: delayNode{thunk: func(ctx context.Context) (any, error) {
		return thunk(ctx)
	}}}
}

// Eval suspends an action that cannot fail.
func Eval[A any](f func() A) Node[A] {
	return Delay(func(context.Context) (A, error) {
		return f(), nil
	})
}

// Fail is an effect that fails with err when interpreted.
func Fail[A any](err error) Node[A] {
	return Delay(func(context.Context) (A, error) {
		var zero A
		return zero, err
	})
}

// FlatMap sequences m into f. Neither m nor f runs until interpretation.
func FlatMap[A, B any](m Node[A], f func(A) Node[B]) Node[B] {
	return Node[B]{n: flatMapNode{
		source: m.n,
		k: func(v any) node {
			return f(valueOf[A](v)).n
		},
	}}
}

// Map applies a pure function to the result of m.
func Map[A, B any](m Node[A], f func(A) B) Node[B] {
	return FlatMap(m, func(a A) Node[B] {
		return Pure(f(a))
	})
}

// Then runs m, discards its result and continues with next.
func Then[A, B any](m Node[A], next Node[B]) Node[B] {
	return FlatMap(m, func(A) Node[B] {
		return next
	})
}

// Suspend defers building a graph until the interpreter reaches it.
// Each interpretation calls build again.
func Suspend[A any](build func() Node[A]) Node[A] {
	return FlatMap(Pure(Unit{}), func(Unit) Node[A] {
		return build()
	})
}

func valueOf[A any](v any) A {
	if v == nil {
		var zero A
		return zero
	}
	return v.(A)
}
