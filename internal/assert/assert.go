// Package assert provides a debug-only assertion helper. Release builds
// compile it to a no-op; see assert_release.go and assert_debug.go.
package assert

// Assert panics with a formatted message when test is false and DEBUG is
// enabled. Engine invariants (bitboard consistency, Zobrist divergence, a
// missing king) are bugs, not recoverable errors, so they abort rather than
// propagate (spec §7).
