// Package cli renders calculation results for the terminal: the colored
// human report, the single-line quiet form and the JSON document.
package cli

import (
	"fmt"
	"io"
	"math/bits"
	"strconv"
	"strings"
	"time"

	"github.com/agbru/fibiter/internal/ui"
)

// FormatExecutionDuration formats a time.Duration for display.
// It shows nanoseconds below a microsecond, microseconds below a millisecond,
// milliseconds below a second, and the default representation otherwise.
func FormatExecutionDuration(d time.Duration) string {
	switch {
	case d < time.Microsecond:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// DisplayResult prints the human-readable report for F(n).
//
// Parameters:
//   - out: The io.Writer for the output.
//   - result: The calculated value.
//   - n: The index of the Fibonacci number calculated.
//   - duration: The time taken for the calculation.
//   - algo: The calculator name, shown with details.
//   - details: If true, prints bit length, digit count and timing.
//   - hex: If true, adds the hexadecimal form.
func DisplayResult(out io.Writer, result uint64, n int, duration time.Duration, algo string, details, hex bool) {
	resultStr := strconv.FormatUint(result, 10)
	fmt.Fprintf(out, "F(%s%d%s) = %s%s%s\n", ui.ColorBlue(), n, ui.ColorReset(), ui.ColorGreen(), formatNumberString(resultStr), ui.ColorReset())

	if hex {
		fmt.Fprintf(out, "F(%s%d%s) [hex] = %s0x%x%s\n", ui.ColorBlue(), n, ui.ColorReset(), ui.ColorGreen(), result, ui.ColorReset())
	}

	if !details {
		return
	}
	durationStr := FormatExecutionDuration(duration)
	if duration <= 0 {
		durationStr = "< 1ns"
	}
	fmt.Fprintf(out, "\n%s--- Details ---%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(out, "Algorithm        : %s%s%s\n", ui.ColorCyan(), algo, ui.ColorReset())
	fmt.Fprintf(out, "Calculation time : %s%s%s\n", ui.ColorGreen(), durationStr, ui.ColorReset())
	fmt.Fprintf(out, "Binary size      : %s%d%s bits\n", ui.ColorCyan(), bits.Len64(result), ui.ColorReset())
	fmt.Fprintf(out, "Number of digits : %s%d%s\n", ui.ColorCyan(), len(resultStr), ui.ColorReset())
}

// formatNumberString inserts thousand separators into a numeric string.
func formatNumberString(s string) string {
	if len(s) == 0 {
		return ""
	}
	prefix := ""
	if s[0] == '-' {
		prefix = "-"
		s = s[1:]
	}
	n := len(s)
	if n <= 3 {
		return prefix + s
	}

	var builder strings.Builder
	builder.Grow(len(prefix) + n + (n-1)/3)
	builder.WriteString(prefix)

	firstGroupLen := n % 3
	if firstGroupLen == 0 {
		firstGroupLen = 3
	}
	builder.WriteString(s[:firstGroupLen])
	for i := firstGroupLen; i < n; i += 3 {
		builder.WriteByte(',')
		builder.WriteString(s[i : i+3])
	}
	return builder.String()
}
