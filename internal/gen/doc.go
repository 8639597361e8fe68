// Package gen provides deterministic Go code generation for field
// descriptor tables.
//
// Generation approach uses text/template + go/format. Each target package
// gets one file whose init function registers the precomputed tables with
// package reflection, so queries on those types perform no reflection.
//
// Tables are built from go/types layouts (internal/analyze) under the same
// traversal rules as reflect-based queries. A table that does not fit the
// configured capacity, or whose dump passes the profile ceiling, fails the
// run instead of being truncated.
package gen
