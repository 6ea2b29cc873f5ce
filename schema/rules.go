package schema

import (
	"regexp"
	"strings"

	"github.com/asaskevich/govalidator"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Rule constrains a node. Rules are applied in order when the node is built.
type Rule func(n *Node)

// Required marks the node as mandatory in its parent object.
var Required Rule = func(n *Node) {
	n.required = true
}

// Field declares a child property of an object node. Declaring the same name
// twice replaces the earlier child in place.
func Field(name string, s Schema) Rule {
	return func(n *Node) {
		for i := range n.props {
			if n.props[i].Name == name {
				n.props[i].Schema = s
				return
			}
		}
		n.props = append(n.props, Property{Name: name, Schema: s})
	}
}

// Min sets the lower bound: rune length for strings, item count for arrays
// and value for numbers.
func Min(limit float64) Rule {
	return func(n *Node) {
		switch n.kind {
		case KindString:
			n.meta.MinLength = count(limit)
		case KindArray:
			n.meta.MinItems = count(limit)
		default:
			n.meta.Min = &limit
		}
	}
}

// Max sets the upper bound: rune length for strings, item count for arrays
// and value for numbers.
func Max(limit float64) Rule {
	return func(n *Node) {
		switch n.kind {
		case KindString:
			n.meta.MaxLength = count(limit)
		case KindArray:
			n.meta.MaxItems = count(limit)
		default:
			n.meta.Max = &limit
		}
	}
}

// count converts a length or item bound, clamping negatives to zero.
func count(limit float64) *uint64 {
	v := uint64(max(limit, 0))
	return &v
}

// Length sets both bounds, see [Min] and [Max].
func Length(lo, hi int) Rule {
	return func(n *Node) {
		Min(float64(lo))(n)
		Max(float64(hi))(n)
	}
}

// Valid restricts the node to the given values.
func Valid(values ...any) Rule {
	return func(n *Node) {
		n.meta.Enum = append(n.meta.Enum, values...)
	}
}

// Describe appends desc to the node description.
func Describe(desc string) Rule {
	return func(n *Node) {
		if n.meta.Description != "" && !strings.HasSuffix(n.meta.Description, " ") {
			n.meta.Description += " "
		}
		n.meta.Description += desc
	}
}

// Default sets the documented default value.
func Default(a any) Rule {
	return func(n *Node) {
		n.meta.Default = a
	}
}

// Example sets the documented example value.
func Example(ex any) Rule {
	return func(n *Node) {
		n.meta.Example = ex
	}
}

// Deprecate marks the node as deprecated.
func Deprecate() Rule {
	return func(n *Node) {
		n.meta.Deprecated = true
	}
}

// Format sets the documented format (e.g. "date-time", "uuid").
func Format(f string) Rule {
	return func(n *Node) {
		n.meta.Format = f
	}
}

// Pattern requires string values to match the regular expression expr.
// It panics if expr does not compile.
func Pattern(expr string) Rule {
	re := regexp.MustCompile(expr)
	return func(n *Node) {
		n.meta.Pattern = expr
		n.checks = append(n.checks, validation.Match(re))
	}
}

// Alphanum requires string values to contain only letters and digits.
func Alphanum() Rule {
	return func(n *Node) {
		n.checks = append(n.checks, validation.NewStringRule(govalidator.IsAlphanumeric, "must contain only letters and digits"))
	}
}

// Email requires string values to be email addresses and documents the
// "email" format.
func Email() Rule {
	return func(n *Node) {
		n.meta.Format = "email"
		n.checks = append(n.checks, validation.NewStringRule(govalidator.IsEmail, "must be a valid email address"))
	}
}

// Unique requires array elements to be distinct.
func Unique() Rule {
	return func(n *Node) {
		n.meta.UniqueItems = true
	}
}
