package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/agbru/fibiter/pkg/models"
)

// FormatQuietResult formats a result for quiet mode: the bare value, in
// decimal or as 0x-prefixed hexadecimal.
func FormatQuietResult(result uint64, hexOutput bool) string {
	if hexOutput {
		return fmt.Sprintf("0x%x", result)
	}
	return strconv.FormatUint(result, 10)
}

// DisplayQuietResult writes the quiet form followed by a newline.
func DisplayQuietResult(out io.Writer, result uint64, hexOutput bool) {
	fmt.Fprintln(out, FormatQuietResult(result, hexOutput))
}

// NewCalculationResult builds the JSON document for a successful calculation.
func NewCalculationResult(n int, result uint64, duration time.Duration, algo string, hexOutput bool) models.CalculationResult {
	doc := models.CalculationResult{
		N:         n,
		Result:    result,
		Duration:  duration.String(),
		Algorithm: algo,
	}
	if hexOutput {
		doc.Hex = FormatQuietResult(result, true)
	}
	return doc
}

// PrintJSONResult writes the calculation as an indented JSON document.
//
// Returns:
//   - error: An error if encoding or writing fails.
func PrintJSONResult(out io.Writer, n int, result uint64, duration time.Duration, algo string, hexOutput bool) error {
	return writeJSON(out, NewCalculationResult(n, result, duration, algo, hexOutput))
}

// PrintJSONError writes a failed calculation as a JSON document.
func PrintJSONError(out io.Writer, n int, kind string, err error) error {
	return writeJSON(out, models.ErrorResult{Error: kind, Message: err.Error(), N: &n})
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON output: %w", err)
	}
	return nil
}
