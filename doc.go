// Package vessel holds the error types shared by the container packages in
// this module.
//
// The containers themselves live in their own packages:
//
//   - github.com/vesselkit/vessel/vec: contiguous growable array
//   - github.com/vesselkit/vessel/bytebuf: growable byte buffer
//   - github.com/vesselkit/vessel/deque: double-ended ring-buffer queue
//   - github.com/vesselkit/vessel/view: non-owning views over the above
//
// # Error Conventions
//
// Every bounds-checked operation exists in two forms. The typed form returns
// *RangeError (or a sentinel wrapped with %w) and is the single source of
// truth; callers handling untrusted or dynamically derived indices use it.
// The panicking form (At, Put, Must*) is a thin wrapper over the typed form
// for call sites that have already validated their indices.
//
// Allocation failure is not an error value anywhere in this module. A
// container that cannot obtain memory cannot maintain its invariants, so
// growth aborts the process (the Go runtime's out-of-memory behavior).
package vessel
