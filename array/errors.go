package array

import "errors"

// Error taxonomy. Structurally impossible operations fail with one of these
// sentinels, wrapped with context and checkable via errors.Is. Degenerate
// inputs (zero-sized dims, empty operands, wrapped indices) never fail —
// they normalize or produce empty results.
var (
	// ErrAllocation is reserved for backing-storage acquisition failures.
	// The Go runtime aborts on heap exhaustion rather than reporting it, so
	// no operation currently returns this; it completes the taxonomy for
	// callers matching broadly.
	ErrAllocation = errors.New("allocation failure")

	// ErrInvalidArgument reports structurally incompatible operands: a
	// reshape that changes the element count, append/insert/remove with
	// mismatched ranks or non-target-axis sizes, or a binary transform
	// over mismatched dims.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfRange reports a flat insert/remove position outside the
	// flattened element count.
	ErrOutOfRange = errors.New("out of range")
)
