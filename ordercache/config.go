package ordercache

// Config specifies behavior of a Cache instance.
type Config struct {
	// EagerMatch runs the matcher inside AddOrder so matching size queries
	// become O(1) reads of the match cache. When disabled the matcher runs
	// lazily inside MatchingSizeForSecurity instead. Both modes produce the
	// same matching sizes.
	EagerMatch bool

	// StrictValidation turns silently absorbed key-absence conditions
	// (duplicate order id, unknown order/user/security) into errors.
	StrictValidation bool

	// ParallelCancellation filters large cancellation batches in parallel
	// chunks. A performance switch only: observable semantics are identical
	// to the serial path.
	ParallelCancellation bool

	// ParallelMatching runs one matching goroutine per buy-side order in
	// lazy mode, coordinating through the per-order locks.
	ParallelMatching bool

	// EnableMatchLog records every pairing as an OrderFill in the append-only
	// match log.
	EnableMatchLog bool
}

// DefaultConfig returns the default Cache configuration:
// eager matching, lenient validation, parallel batch operations, no match log.
func DefaultConfig() Config {
	return Config{
		EagerMatch:           true,
		ParallelCancellation: true,
		ParallelMatching:     true,
	}
}
