// Package analyze provides package loading and build-time struct dumps.
//
// It uses golang.org/x/tools/go/packages with go/types to walk struct
// layouts without compiling or running the code under inspection.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeKind: classification deciding whether a type is descended
//   - Analyzer: loads packages and looks up struct types
//   - StructDumper: reflection.Dumper over a go/types struct layout
package analyze
