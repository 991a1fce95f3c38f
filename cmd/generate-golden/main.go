package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/big"
	"os"
	"path/filepath"

	"github.com/agbru/fibiter/internal/fibonacci"
)

// GoldenData represents a single test case in the golden file
type GoldenData struct {
	N      int    `json:"n"`
	Result string `json:"result"`
}

func main() {
	outputDir := flag.String("out", "internal/fibonacci/testdata", "Output directory for the golden file")
	flag.Parse()

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	filename := filepath.Join(*outputDir, "fibonacci_golden.json")
	file, err := os.Create(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	// Every index the calculator supports, 0 through fibonacci.MaxIndex.
	data := make([]GoldenData, 0, fibonacci.MaxIndex+1)
	for n := fibonacci.MinIndex; n <= fibonacci.MaxIndex; n++ {
		data = append(data, GoldenData{
			N:      n,
			Result: fibBig(n).String(),
		})
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated %d golden values at %s\n", len(data), filename)
}

// fibBig calculates the nth Fibonacci number using math/big so the oracle
// cannot share an overflow bug with the uint64 calculator under test.
func fibBig(n int) *big.Int {
	a := big.NewInt(0)
	b := big.NewInt(1)
	for i := 0; i < n; i++ {
		a.Add(a, b) // a = a + b
		a, b = b, a // new a is old b, new b is the sum
	}
	return a
}
