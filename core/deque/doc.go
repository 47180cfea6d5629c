// File: core/deque/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package deque implements a generic resizable double-ended queue over a
// circular backing store.
//
// A single contiguous store of fixed capacity is addressed modulo its
// length, so both logical ends can wrap around the physical boundary.
// Pushes and pops at either end are amortized O(1), random access is O(1),
// and arbitrary-position insertion or removal is O(n). The store only ever
// grows (doubling on demand); no shrink or compaction exists.
//
// All operations are unchecked: preconditions are the caller's to
// establish, and no bounds validation is performed on the hot path. The
// checked package wraps this one for callers who want reported errors
// instead. Nothing here is safe for concurrent use without external
// synchronization.
package deque
