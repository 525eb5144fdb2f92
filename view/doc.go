// Package view provides non-owning windows into the module's containers.
//
// A View is {owner, start, end}. It holds no storage, has no disposal effect
// on the viewed data, and never caches the owner's size: the effective length
// is recomputed against the owner's current size on every call, so a view
// built over five elements reports length 0 after the owner is cleared
// instead of reading stale memory.
//
// Anything exposing Size and a bounds-checked Get can be viewed; Vec and
// bytebuf.Buffer both qualify.
package view
