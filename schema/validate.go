package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"slices"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	errNotString  = validation.NewError("validation_is_string", "must be a string")
	errNotBool    = validation.NewError("validation_is_bool", "must be a boolean")
	errNotNumber  = validation.NewError("validation_is_number", "must be a number")
	errNotInteger = validation.NewError("validation_is_integer", "must be an integer")
	errNotObject  = validation.NewError("validation_is_object", "must be an object")
	errNotArray   = validation.NewError("validation_is_array", "must be an array")
	errNotUnique  = validation.NewError("validation_unique", "must not contain duplicates")
)

// Validate checks a decoded value (as produced by encoding/json into an any)
// against the node. Object nodes report failures as [validation.Errors]
// keyed by property name.
//
// Node implements [validation.Rule], so it can be combined with other
// ozzo-validation rules.
func (n *Node) Validate(value any) error {
	v, isNil := validation.Indirect(value)
	if isNil {
		if n.required {
			return validation.NotNil.Validate(value)
		}
		return nil
	}

	switch n.kind {
	case KindString:
		if _, ok := v.(string); !ok {
			return errNotString
		}
		return validation.Validate(v, n.stringRules()...)
	case KindBoolean:
		if _, ok := v.(bool); !ok {
			return errNotBool
		}
		return validation.Validate(v, n.checks...)
	case KindNumber, KindInteger:
		return n.validateNumber(v)
	case KindObject:
		return n.validateObject(v)
	case KindArray:
		return n.validateArray(v)
	}
	return validation.Validate(v, n.checks...)
}

func (n *Node) stringRules() []validation.Rule {
	rules := slices.Clone(n.checks)
	if r, ok := lengthRule(n.meta.MinLength, n.meta.MaxLength, true); ok {
		rules = append(rules, r)
	}
	if len(n.meta.Enum) > 0 {
		rules = append(rules, validation.In(n.meta.Enum...))
	}
	return rules
}

func (n *Node) validateNumber(v any) error {
	f, err := getFloat(v)
	if err != nil {
		return errNotNumber
	}
	if n.kind == KindInteger && f != math.Trunc(f) {
		return errNotInteger
	}

	rules := slices.Clone(n.checks)
	if n.meta.Min != nil {
		rules = append(rules, validation.Min(*n.meta.Min))
	}
	if n.meta.Max != nil {
		rules = append(rules, validation.Max(*n.meta.Max))
	}
	if len(n.meta.Enum) > 0 {
		allowed := make([]any, 0, len(n.meta.Enum))
		for _, e := range n.meta.Enum {
			if ef, err := getFloat(e); err == nil {
				allowed = append(allowed, ef)
			}
		}
		rules = append(rules, validation.In(allowed...))
	}
	return validation.Validate(f, rules...)
}

func (n *Node) validateObject(v any) error {
	m, ok := v.(map[string]any)
	if !ok {
		return errNotObject
	}
	errs := validation.Errors{}
	for _, p := range n.props {
		r, ok := p.Schema.(validation.Rule)
		if !ok {
			continue
		}
		errs[p.Name] = r.Validate(m[p.Name])
	}
	if err := errs.Filter(); err != nil {
		return err
	}
	return validation.Validate(v, n.checks...)
}

func (n *Node) validateArray(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return errNotArray
	}

	rules := slices.Clone(n.checks)
	if r, ok := lengthRule(n.meta.MinItems, n.meta.MaxItems, false); ok {
		rules = append(rules, r)
	}
	if n.meta.UniqueItems {
		rules = append(rules, validation.By(distinct))
	}
	if item, ok := n.items.(validation.Rule); ok {
		rules = append(rules, validation.Each(item))
	}
	return validation.Validate(v, rules...)
}

// lengthRule converts optional bounds into an ozzo length rule. ozzo treats a
// zero maximum as unbounded.
func lengthRule(lo, hi *uint64, runes bool) (validation.Rule, bool) {
	var minLen, maxLen int
	if lo != nil {
		minLen = int(*lo)
	}
	if hi != nil {
		maxLen = int(*hi)
	}
	if minLen == 0 && maxLen == 0 {
		return nil, false
	}
	if runes {
		return validation.RuneLength(minLen, maxLen), true
	}
	return validation.Length(minLen, maxLen), true
}

func distinct(value any) error {
	rv := reflect.ValueOf(value)
	for i := range rv.Len() {
		for j := i + 1; j < rv.Len(); j++ {
			if reflect.DeepEqual(rv.Index(i).Interface(), rv.Index(j).Interface()) {
				return errNotUnique
			}
		}
	}
	return nil
}

var floatType = reflect.TypeOf(float64(0))

func getFloat(unk any) (float64, error) {
	if n, ok := unk.(json.Number); ok {
		return n.Float64()
	}
	v := reflect.Indirect(reflect.ValueOf(unk))
	if !v.IsValid() || !v.Type().ConvertibleTo(floatType) || v.Kind() == reflect.String {
		return 0, fmt.Errorf("cannot convert %T to float64", unk)
	}
	return v.Convert(floatType).Float(), nil
}
