// Package vec implements the contiguous growable array the rest of the
// module is built on.
//
// # Overview
//
// A Vec[T] is {buffer, size, capacity}: a manually managed backing buffer of
// capacity elements, of which the first size are live. Logical element i is
// physical element i. The buffer is allocated lazily on first growth and
// released exactly once by Free.
//
// # Ownership Discipline
//
// Each live slot holds its element exactly once. Reading a slot out (Pop,
// RemoveAt, Swap, Drain) moves the element to the caller and vacates the
// slot; overwriting a slot (Set, Put, Clear, Truncate) first hands the
// previous occupant to the drop hook. Moving elements between containers
// (Append, Drain) zeroes the source's logical size so the same element is
// never dropped twice.
//
// The drop hook is configured per container with WithDrop and is invoked
// exactly once per disposed element. Containers of plain values need none.
//
// # Growth
//
// Reserve grows only when the spare capacity is short, to
// max(capacity*2, capacity+n) - amortized doubling. ReserveExact grows to
// exactly size+n for callers that know the final size precisely.
//
// # Error Conventions
//
// Bounds-checked operations return *vessel.RangeError; At, Put and the Must*
// constructors are panicking wrappers over the typed forms. See the root
// vessel package.
//
// # Thread Safety
//
// A Vec is not thread-safe. Each instance is exclusively owned by one logical
// task at a time; hand whole containers between goroutines instead of sharing
// one.
package vec
