// Package reflection enumerates the fields of struct types as an ordered,
// flattened sequence of FieldEntry descriptors.
//
// Fields promoted from embedded structs are reported in place, tagged with
// the embedded ("base") type that provides them. Fields of member structs
// are reported after the member itself when traversal is exhaustive.
//
// Key types:
//   - FieldEntry: one descriptor per visited field
//   - FixedVector: bounded result store, fails instead of truncating
//   - Dumper: structural dump of one type, one Field call per declared field
//   - Reflector: query entry point, backed by generated tables or reflect
//
// Descriptor tables can be produced ahead of time by cmd/fieldgen; generated
// code registers them at init and queries answered from them perform no
// reflection.
package reflection
