package schema

import (
	"slices"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Node is the builder implementation of [Schema], [ObjectSchema] and
// [ArraySchema]. Create one with [String], [Number], [Integer], [Bool],
// [Object], [Array] or [Any].
type Node struct {
	kind     Kind
	required bool
	meta     Metadata
	props    []Property
	items    Schema
	checks   []validation.Rule
}

func newNode(kind Kind, rules []Rule) *Node {
	n := &Node{kind: kind}
	for _, r := range rules {
		r(n)
	}
	return n
}

// String returns a string node.
func String(rules ...Rule) *Node {
	return newNode(KindString, rules)
}

// Number returns a floating point number node.
func Number(rules ...Rule) *Node {
	return newNode(KindNumber, rules)
}

// Integer returns a whole number node.
func Integer(rules ...Rule) *Node {
	return newNode(KindInteger, rules)
}

// Bool returns a boolean node.
func Bool(rules ...Rule) *Node {
	return newNode(KindBoolean, rules)
}

// Any returns a node accepting any value.
func Any(rules ...Rule) *Node {
	return newNode(KindAny, rules)
}

// Object returns an object node. Children are declared with [Field].
func Object(rules ...Rule) *Node {
	return newNode(KindObject, rules)
}

// Array returns an array node whose elements match item. A nil item leaves
// the elements unconstrained.
func Array(item Schema, rules ...Rule) *Node {
	n := newNode(KindArray, rules)
	n.items = item
	return n
}

// With returns a copy of n with additional rules applied. n is left untouched,
// so a shared node can be specialized per route.
func (n *Node) With(rules ...Rule) *Node {
	c := &Node{
		kind:     n.kind,
		required: n.required,
		meta:     n.Metadata(),
		props:    slices.Clone(n.props),
		items:    n.items,
		checks:   slices.Clone(n.checks),
	}
	for _, r := range rules {
		r(c)
	}
	return c
}

func (n *Node) Kind() Kind {
	return n.kind
}

func (n *Node) IsRequired() bool {
	return n.required
}

// Metadata returns a copy of the node's scalar attributes.
func (n *Node) Metadata() Metadata {
	m := n.meta
	m.Enum = slices.Clone(n.meta.Enum)
	return m
}

func (n *Node) Properties() []Property {
	return slices.Clone(n.props)
}

func (n *Node) Items() Schema {
	return n.items
}
