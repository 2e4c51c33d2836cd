// Package script implements lite's embedded expression language: a parser
// producing an expression tree, a tree-walking interpreter over lexically
// chained environments, and the builtin registry bridging scripts to the
// host editor.
//
// Expressions and runtime values share one tagged representation (Value), so
// parsed trees are first-class values and quoting is free. Values are
// immutable once constructed; rebinding a name in an Environment is the only
// way to "change" anything.
package script
