// Package sieve computes primality candidacy for every integer in [0, n]
// with the Sieve of Eratosthenes.
//
// # Reading Guide
//
//   - store_packed.go: word-packed bit store used by the sequential engine
//   - store_flat.go: one byte per index, used by the parallel engine
//   - sequential.go / parallel.go: the two elimination engines
//   - engine.go: Config and Run, which select an engine by Kind
//   - query.go: enumeration of primes inside [left, right]
//
// # Stores
//
// Both stores implement Store. A store is built once by an engine, is owned
// by it while elimination runs, and is read-only after the engine returns.
// The store always spans [0, n]; range filtering happens only at query time.
//
// # Concurrency
//
// The sequential engine never spawns goroutines. The parallel engine runs at
// most Config.Threads workers at a time (1..16). Workers only ever store 0
// into one-byte cells of a FlatStore, so concurrent writes cannot tear a
// neighbouring index and elimination order does not affect the result.
package sieve
