// Package diagnostic provides structured warnings and errors for table
// generation.
//
// Key capabilities:
//   - Missing or non-struct target types
//   - Capacity overflows, reported instead of truncated tables
//   - Dump ceiling overflows
//   - Warnings for tables that carry no fields
//   - Config file validation problems
package diagnostic
