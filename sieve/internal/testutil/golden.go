// Package testutil provides shared test infrastructure for the sieve
// packages: a trial-division reference and the golden dataset loader.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/goldendataset.json.
type GoldenDataset struct {
	PrimeCounts []GoldenCount `json:"prime_counts"`
	Ranges      []GoldenRange `json:"ranges"`
}

// GoldenCount is the number of primes in [0, N].
type GoldenCount struct {
	N     uint64 `json:"n"`
	Count int    `json:"count"`
}

// GoldenRange is the expected enumeration for a sieve over [0, N] queried
// with raw (not yet normalized) bounds.
type GoldenRange struct {
	N      uint64   `json:"n"`
	Left   int64    `json:"left"`
	Right  int64    `json:"right"`
	Primes []uint64 `json:"primes"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sieve/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldendataset.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}

	return &dataset
}
