// Command generate-golden writes internal/fibonacci/testdata/fibonacci_golden.json,
// the reference values the strategy tests are checked against. Values come
// from a plain math/big iteration so they do not depend on the Nat kernels.
//
//	go run ./cmd/generate-golden [-out dir] [-extra 30000,65537]
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
)

// GoldenData is one entry of the golden file.
type GoldenData struct {
	N      uint64 `json:"n"`
	Result string `json:"result"`
}

// defaultTargets covers the small cases, the 64- and 128-bit limb boundaries
// (F(94) and F(187) are the first values needing another limb) and a few
// powers of two where matrix exponentiation has the longest squaring chain.
var defaultTargets = []uint64{
	0, 1, 2, 3, 4, 5, 10, 20, 50, 92, 93, 94, 100,
	128, 186, 187, 256, 512, 1000, 1024,
	2000, 2048, 4095, 4097, 5000, 8192, 10000,
}

func main() {
	outputDir := flag.String("out", "internal/fibonacci/testdata", "Output directory for the golden file")
	extra := flag.String("extra", "", "Comma-separated additional indices")
	flag.Parse()

	targets, err := parseTargets(*extra)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}
	filename := filepath.Join(*outputDir, "fibonacci_golden.json")
	if err := writeGolden(filename, targets); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d values to %s\n", len(targets), filename)
}

// parseTargets merges the default indices with a comma-separated list and
// returns them sorted without duplicates.
func parseTargets(extra string) ([]uint64, error) {
	targets := slices.Clone(defaultTargets)
	for _, field := range strings.Split(extra, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.ParseUint(field, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid index %q: %w", field, err)
		}
		targets = append(targets, n)
	}
	slices.Sort(targets)
	return slices.Compact(targets), nil
}

func writeGolden(filename string, targets []uint64) error {
	data := make([]GoldenData, 0, len(targets))
	a, b := big.NewInt(0), big.NewInt(1)
	var i uint64
	for _, n := range targets {
		for ; i < n; i++ {
			a.Add(a, b)
			a, b = b, a
		}
		data = append(data, GoldenData{N: n, Result: a.String()})
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating %s: %w", filename, err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("encoding golden data: %w", err)
	}
	return nil
}
