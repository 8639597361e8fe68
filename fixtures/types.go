// Package fixtures holds struct shapes shared by the reflection, analyze and
// gen tests. Tests load it both through reflect and through go/packages, so
// the two backends can be compared on identical layouts.
package fixtures

import "time"

type BaseStruct struct {
	A int
	B int
}

type ChildStruct struct {
	BaseStruct
	C int
	D int
}

// GrandChildStruct embeds a type that itself embeds a base.
type GrandChildStruct struct {
	ChildStruct
	E string
}

// PointerChildStruct embeds its base through a pointer.
type PointerChildStruct struct {
	*BaseStruct
	C int
}

type StructWithNestedStructs struct {
	Yellow int
	Red    [17]float64
	Green  BaseStruct
	Purple ChildStruct
}

// MockNonAggregate has an unexported field, so it is opaque to exhaustive
// traversal unless queried directly.
type MockNonAggregate struct {
	field1 int
}

func NewMockNonAggregate(v int) MockNonAggregate {
	return MockNonAggregate{field1: v}
}

func (m MockNonAggregate) Field1() int {
	return m.field1
}

type StructWithNonAggregates struct {
	A1           int
	NonAggregate MockNonAggregate
}

// StructWithLeaves mixes members that are never descended.
type StructWithLeaves struct {
	At     time.Time
	Ptr    *BaseStruct
	Items  []BaseStruct
	ByName map[string]int
	Blob   [4]BaseStruct
}

// Pair is a generic aggregate.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// StructWithSpelledTypes has fields whose type text depends on how byte,
// rune and type arguments are spelled.
type StructWithSpelledTypes struct {
	Data    [4]byte
	Runes   []rune
	Lookup  map[string]byte
	Counts  Pair[int, string]
	Labeled Pair[string, BaseStruct]
	Pairs   []Pair[byte, *BaseStruct]
	Inbox   <-chan rune
}

// SelfReferencing embeds a pointer to itself.
type SelfReferencing struct {
	*SelfReferencing
	Value int
}

// EmbedsOpaque embeds a struct with unexported fields; nothing is promoted
// from it, so it is reported as a plain member.
type EmbedsOpaque struct {
	MockNonAggregate
	X int
}

type Empty struct{}

type NonDefaultConstructibleWithFields struct {
	A int
	B float64
}

func NewNonDefaultConstructibleWithFields(a int, b float64) NonDefaultConstructibleWithFields {
	return NonDefaultConstructibleWithFields{A: a, B: b}
}

type RecursiveFieldCount8 struct {
	A1 float64
	A2 float64
	A3 float64
	A4 float64
	A5 float64
	A6 int
	A7 int
	A8 int
}

type RecursiveFieldCount9 struct {
	A1 float64
	A2 float64
	A3 float64
	A4 float64
	A5 float64
	A6 int
	A7 int
	A8 int
	A9 int
}

type RecursiveFieldCount10 struct {
	Ten1 RecursiveFieldCount9 // the member itself counts
}

type RecursiveFieldCount99 struct {
	Ten1 RecursiveFieldCount9
	Ten2 RecursiveFieldCount9
	Ten3 RecursiveFieldCount9
	Ten4 RecursiveFieldCount9
	Ten5 RecursiveFieldCount9
	Ten6 RecursiveFieldCount9
	Ten7 RecursiveFieldCount9
	Ten8 RecursiveFieldCount9
	Ten9 RecursiveFieldCount9
	A1   int
	A2   int
	A3   int
	A4   int
	A5   int
	A6   int
	A7   int
	A8   int
	A9   int
}

type RecursiveFieldCount100 struct {
	OneHundred1 RecursiveFieldCount99
}

type RecursiveFieldCount193 struct {
	OneHundred1 RecursiveFieldCount99
	Ten1        RecursiveFieldCount9
	Ten2        RecursiveFieldCount9
	Ten3        RecursiveFieldCount9
	Ten4        RecursiveFieldCount9
	Ten5        RecursiveFieldCount9
	Ten6        RecursiveFieldCount9
	Ten7        RecursiveFieldCount9
	Ten8        RecursiveFieldCount9
	Ten9        RecursiveFieldCount9
	A1          int
	A2          int
	A3          int
}

type RecursiveFieldCount194 struct {
	F RecursiveFieldCount193
}

type RecursiveFieldCount300 struct {
	OneHundred1 RecursiveFieldCount99
	OneHundred2 RecursiveFieldCount99
	OneHundred3 RecursiveFieldCount99
}

// NotAStruct is rejected as a query root.
type NotAStruct int
