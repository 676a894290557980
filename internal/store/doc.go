// Package store provides the SQLite-backed generation ledger used by
// nonzerogen.
//
// Every successful generate run appends one row to the generations table:
//   - id: random UUID for the run
//   - seq: logical clock, strictly increasing per database
//   - decl_hash: content hash of the declaration file (see decl.Hash)
//   - output_hash: SHA-256 of the generated source
//
// generate --db consults the latest row for an output path and skips the
// write when both hashes still match. history lists the ledger.
//
// All queries order by seq ASC, id ASC COLLATE BINARY.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON
package store
