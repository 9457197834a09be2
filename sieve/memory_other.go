//go:build !linux

package sieve

func totalMemory() uint64 { return 0 }
