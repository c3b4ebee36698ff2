package effects

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrUnallocatedRef is the failure of any access through the zero Ref.
var ErrUnallocatedRef = errors.New("ref used before allocation")

// Ref is a handle to a mutable cell. The cell is only reachable through the
// effects returned by its methods, so reads and writes happen in program order.
//
// Cells are not synchronized. A single run is single-threaded; interpreting
// graphs that share a Ref from several goroutines requires external locking.
type Ref[A any] struct {
	id   string
	cell *cell[A]
}

type cell[A any] struct {
	value A
}

// NewRef allocates a fresh cell holding initial when interpreted.
func NewRef[A any](initial A) Node[Ref[A]] {
	return Eval(func() Ref[A] {
		return Ref[A]{
			id:   uuid.New().String(),
			cell: &cell[A]{value: initial},
		}
	})
}

// ID identifies the cell; it is empty for the zero Ref.
func (r Ref[A]) ID() string {
	return r.id
}

// Get reads the current value.
func (r Ref[A]) Get() Node[A] {
	return r.access(func(c *cell[A]) A {
		return c.value
	})
}

// Set overwrites the current value.
func (r Ref[A]) Set(a A) Node[Unit] {
	return Skip(r.access(func(c *cell[A]) A {
		c.value = a
		return a
	}))
}

// Modify applies f to the current value, stores the result and returns it.
func (r Ref[A]) Modify(f func(A) A) Node[A] {
	return r.access(func(c *cell[A]) A {
		c.value = f(c.value)
		return c.value
	})
}

func (r Ref[A]) access(f func(*cell[A]) A) Node[A] {
	return Delay(func(context.Context) (A, error) {
		if r.cell == nil {
			var zero A
			return zero, ErrUnallocatedRef
		}
		return f(r.cell), nil
	})
}
