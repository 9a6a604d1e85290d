// Package array provides Array, a generic growable sequence that owns its
// buffer exclusively.
//
// Ownership is explicit. Clone and CopyFrom always build an independent
// buffer sized to the source capacity; Move and MoveFrom transfer the
// buffer in constant time and leave the source empty but reusable. Growth
// doubles the capacity (0 becomes 1), moves the live elements into the new
// buffer and adopts it only once the move is complete, so a failed
// allocation leaves the array in its previous state.
//
// Element types that hold references to mutable state can implement
// Cloner; copies made by Push, Clone and CopyFrom then call Clone instead
// of assigning the value.
//
// Out-of-range indices and allocation failures are reported as errors that
// wrap ErrOutOfRange and ErrAllocation. An Array is not safe for concurrent
// use.
package array
