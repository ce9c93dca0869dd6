// Package typelevel encodes small natural numbers in types so that the
// compiler can track how many consumers hold on to a resource.
//
// A value of type Enabled[T, N] is a T that N other values depend on. The
// count only changes through Inc and Dec, and Dec does not accept a value
// whose count is Zero. Functions that release or reconfigure a resource
// accept Enabled[T, Zero] only, so a resource that is still in use cannot be
// passed to them.
//
// Creating, counting and rebuilding Enabled values requires seal.K, which
// only the clock packages of this module can name. Any other key panics.
package typelevel

import "omibyte.io/samclock/internal/seal"

// Count is a natural number. It is implemented by Zero and Succ only.
type Count interface {
	count() int
}

type Zero struct{}

func (Zero) count() int { return 0 }

// Succ is N + 1.
type Succ[N Count] struct{}

func (Succ[N]) count() int {
	var n N
	return n.count() + 1
}

type (
	One   = Succ[Zero]
	Two   = Succ[One]
	Three = Succ[Two]
	Four  = Succ[Three]
	Five  = Succ[Four]
	Six   = Succ[Five]
	Seven = Succ[Six]
	Eight = Succ[Seven]
)

// Value returns the natural number encoded by N.
func Value[N Count]() int {
	var n N
	return n.count()
}

// Counter is a bare type-level counter.
type Counter[N Count] struct{}

func (Counter[N]) Value() int {
	return Value[N]()
}

func Increment[N Count](Counter[N]) Counter[Succ[N]] {
	return Counter[Succ[N]]{}
}

func Decrement[N Count](Counter[Succ[N]]) Counter[N] {
	return Counter[N]{}
}

// Enabled wraps an enabled resource together with the number of its users.
type Enabled[T any, N Count] struct {
	t T
}

// New wraps a freshly enabled resource that nothing depends on yet.
func New[T any](k seal.Key, t T) Enabled[T, Zero] {
	k.Check()
	return Enabled[T, Zero]{t: t}
}

// Get returns the wrapped resource.
func (e Enabled[T, N]) Get() T {
	return e.t
}

// Count returns the number of users.
func (e Enabled[T, N]) Count() int {
	return Value[N]()
}

// Inc registers one more user.
func Inc[T any, N Count](k seal.Key, e Enabled[T, N]) Enabled[T, Succ[N]] {
	k.Check()
	return Enabled[T, Succ[N]]{t: e.t}
}

// Dec releases one user.
func Dec[T any, N Count](k seal.Key, e Enabled[T, Succ[N]]) Enabled[T, N] {
	k.Check()
	return Enabled[T, N]{t: e.t}
}

// Unwrap releases the wrapper of an unused resource.
func Unwrap[T any](e Enabled[T, Zero]) T {
	return e.t
}

// Map replaces the wrapped resource and keeps the number of users.
func Map[T, U any, N Count](k seal.Key, e Enabled[T, N], f func(T) U) Enabled[U, N] {
	k.Check()
	return Enabled[U, N]{t: f(e.t)}
}
