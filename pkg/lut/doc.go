// Package lut holds transistor operating-point lookup tables in memory.
//
// A Table is column-major: every column is a []float64 of the same length,
// addressed by name. Each row carries a stable integer ID that survives
// filtering and concatenation, so a derived row can always be traced back to
// the simulated point it came from without relying on positional alignment.
//
// # Immutability
//
// Tables are never modified after construction. Transforms such as
// WithColumn or Filter return a new Table that shares untouched column
// slices with its parent. Slices returned by Column must be treated as
// read-only by callers; this is what makes concurrent use of one base table
// safe without locking.
//
// # Building
//
// Builder appends rows in order and is used by loaders. Concat joins
// same-schema tables with a single allocation per column.
package lut
