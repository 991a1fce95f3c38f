// Package fibonacci provides the Fibonacci calculator used by fibiter.
// It exposes a `Calculator` interface so that the command line, the HTTP server
// and the acceptance scenarios all bind against the same invoke/return shape,
// while cross-cutting concerns (tracing, metrics, logging) are layered on top by
// the Instrumented decorator without touching the arithmetic.
package fibonacci

//go:generate mockgen -source=calculator.go -destination=mocks/mock_calculator.go -package=mocks

// Calculator defines the public interface for a Fibonacci calculator.
type Calculator interface {
	// Calculate returns F(index) using the convention F(0)=0, F(1)=1.
	//
	// Parameters:
	//   - index: The 0-based position in the sequence.
	//
	// Returns:
	//   - uint64: The Fibonacci number at index. It is 0 when err is non-nil.
	//   - error: An *IndexError wrapping ErrInvalidArgument if index lies outside
	//     [MinIndex, MaxIndex].
	Calculate(index int) (uint64, error)

	// Name returns the display name of the calculation algorithm.
	Name() string
}

// Linear computes Fibonacci numbers with the accumulator-pair iteration:
// two running totals advance together, so F(n) costs n additions and
// constant extra memory.
//
// Linear holds no state. The zero value is ready to use and a single instance
// may be shared between goroutines.
type Linear struct{}

// NewLinear returns a new linear calculator.
func NewLinear() *Linear {
	return &Linear{}
}

// Name returns the name of the algorithm.
func (l *Linear) Name() string {
	return "Linear Iteration (O(n))"
}

// Calculate returns F(index).
func (l *Linear) Calculate(index int) (uint64, error) {
	if err := ValidateIndex(index); err != nil {
		return 0, err
	}
	var a, b uint64 = 0, 1
	for i := 0; i < index; i++ {
		a, b = b, a+b
	}
	return a, nil
}

// ValidateIndex reports whether index can be computed without leaving the
// uint64 range.
//
// Parameters:
//   - index: The requested position in the sequence.
//
// Returns:
//   - error: nil for indices in [MinIndex, MaxIndex], an *IndexError otherwise.
func ValidateIndex(index int) error {
	if index < MinIndex {
		return &IndexError{Index: index, Reason: "index must be non-negative"}
	}
	if index > MaxIndex {
		return &IndexError{Index: index, Reason: "result does not fit in 64 bits (maximum index is 93)"}
	}
	return nil
}

// compile-time interface check
var _ Calculator = (*Linear)(nil)
