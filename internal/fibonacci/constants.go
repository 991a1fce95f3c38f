package fibonacci

const (
	// MinIndex is the smallest index of the sequence.
	MinIndex = 0

	// MaxIndex = 93 because F(93) = 12200160415121876738 is the largest
	// Fibonacci number that fits in a uint64; F(94) exceeds 2^64.
	MaxIndex = 93
)
