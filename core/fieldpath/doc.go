// Package fieldpath resolves dotted attribute paths against arbitrary object graphs.
//
// A path is a sequence of attribute names joined by "__" (e.g. "table__name").
// Resolution walks the graph by reflection, one segment per hop, and returns
// the terminal value's string representation:
//
//	type Table struct{ Name string }
//	type Record struct{ Table *Table }
//
//	value, err := fieldpath.Resolve(Record{Table: &Table{Name: "users"}}, "table__name")
//	// value == "users"
//
// Struct fields are matched by exact name first, then case-insensitively, so
// lowercase paths reach exported Go fields. String-keyed maps are matched by
// exact key. Pointers and interfaces are dereferenced at every hop; a nil
// pointer mid-path fails resolution since there is nothing to look up on.
//
// The terminal value is stringified with its natural conversion: fmt.Stringer
// when implemented, otherwise the fmt "%v" representation.
//
// Resolution is read-only and safe for concurrent use. Failures return a
// *ResolutionError carrying the full original path and the root's type name;
// no partial result is ever returned.
package fieldpath
