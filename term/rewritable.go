package term

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/

// Term is any value the engine can traverse and rewrite. It is a plain
// alias for interface{}; the name exists to make signatures throughout
// this module and package strategy read as term-rewriting operations
// rather than opaque interface{} plumbing.
type Term = interface{}

// Rewritable is a host-defined capability enabling generic decomposition
// and reassembly of a value without the engine needing to know its
// concrete type. A value implementing Rewritable always takes precedence
// over the reflective Product/Mapping/Sequence shapes below.
type Rewritable interface {
	// Arity reports the number of children Deconstruct will return.
	Arity() int
	// Deconstruct returns the ordered children of the receiver.
	Deconstruct() []Term
	// Reconstruct builds a new value of the receiver's concrete type from
	// replacement children. It is called with exactly Arity() children.
	Reconstruct(children []Term) Term
}

// KV is a key/value pair, used as the child type for the Mapping shape.
// some/one/all replace a KV wholesale — pair-level replacement, not
// value-only replacement (see DESIGN.md for the rationale).
type KV struct {
	Key   Term
	Value Term
}
