// Package bytebuf implements the byte-stride specialization of the growable
// array: the same design as vec with the element size fixed at one byte,
// plus string hand-off and secure erasure.
//
// # Differences from vec
//
//   - Growth arithmetic is directly in bytes.
//   - Append copies from any pointer+length-exposing source in a single
//     overlap-safe copy, not element by element.
//   - Resize truncates or fills new trailing space with a repeated byte.
//   - DrainString transfers the buffer's storage into an immutable string
//     with no additional allocation.
//   - Zero overwrites the live contents in place, for erasing sensitive data
//     such as key material; WithLocked additionally pins the backing pages
//     into RAM and scrubs them on every reallocation and release.
//
// # Thread Safety
//
// A Buffer is not thread-safe; each instance is exclusively owned by one
// logical task at a time.
package bytebuf
