// Package deque implements a double-ended queue over a circular buffer.
//
// Logical element i lives at physical index (head + i) mod capacity, so both
// ends support O(1) amortized push and pop. Growth extends the backing
// buffer at its tail end and then re-linearizes the occupied region: when
// the region wraps past the old end, either the wrapped tail segment moves
// into the freshly added space (head stays put) or the head-side segment
// relocates to the new end of the buffer. Both branches preserve the logical
// order exactly as observed before growth.
//
// Ownership follows the vec package: reading an element out vacates its
// slot, disposal runs through the WithDrop hook exactly once per element,
// and Clear pops from the front until empty so disposal order is the logical
// order.
package deque
