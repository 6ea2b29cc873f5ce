package schema

// Kind is the primitive kind of a schema node.
type Kind string

const (
	KindString  Kind = "string"
	KindNumber  Kind = "number"
	KindInteger Kind = "integer"
	KindBoolean Kind = "boolean"
	KindObject  Kind = "object"
	KindArray   Kind = "array"

	// KindAny accepts any value. It has no document representation.
	KindAny Kind = "any"
)

type (
	// Schema is the capability set the generator needs from a schema node.
	Schema interface {
		Kind() Kind
		// IsRequired reports whether the node must be present in its parent.
		IsRequired() bool
		Metadata() Metadata
	}

	// ObjectSchema is implemented by nodes of kind [KindObject].
	ObjectSchema interface {
		Schema
		// Properties returns the declared children in declaration order.
		Properties() []Property
	}

	// ArraySchema is implemented by nodes of kind [KindArray].
	ArraySchema interface {
		Schema
		// Items returns the item schema, or nil when items are unconstrained.
		Items() Schema
	}

	// Property is a named child of an object node.
	Property struct {
		Name   string
		Schema Schema
	}

	// Metadata holds the scalar attributes of a node. Nil pointers and zero
	// values mean the attribute is not set.
	Metadata struct {
		Description string
		Default     any
		Example     any
		Enum        []any
		Format      string
		Pattern     string
		Deprecated  bool

		// Min and Max bound numeric values.
		Min, Max *float64
		// MinLength and MaxLength bound string length in runes.
		MinLength, MaxLength *uint64
		// MinItems and MaxItems bound array length.
		MinItems, MaxItems *uint64
		UniqueItems        bool
	}
)
