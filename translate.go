package routedoc

import (
	"errors"
	"fmt"
	"reflect"
	"slices"

	"github.com/Gobd/routedoc/openapi"
	"github.com/Gobd/routedoc/schema"
	"github.com/getkin/kin-openapi/openapi2"
	"github.com/getkin/kin-openapi/openapi3"
)

var kindTypes = map[schema.Kind]string{
	schema.KindString:  openapi3.TypeString,
	schema.KindNumber:  openapi3.TypeNumber,
	schema.KindInteger: openapi3.TypeInteger,
	schema.KindBoolean: openapi3.TypeBoolean,
	schema.KindObject:  openapi3.TypeObject,
	schema.KindArray:   openapi3.TypeArray,
}

// translator converts the schemas of one route. Unsupported nodes are
// recorded as warnings unless the config is strict.
type translator struct {
	cfg      *Config
	route    Route
	warnings *Warnings
}

// recover absorbs err when it is an unsupported schema type and the config
// is not strict, recording a warning. Any other error is returned as is.
func (t *translator) recover(err error) error {
	var ue *UnsupportedSchemaTypeError
	if t.cfg.Strict || !errors.As(err, &ue) {
		return err
	}
	t.warn(err)
	return nil
}

func (t *translator) warn(err error) {
	*t.warnings = append(*t.warnings, Warning{Method: t.route.Method, Path: t.route.Path, Err: err})
	t.cfg.Logger.Debug("routedoc: field omitted", "method", t.route.Method, "path", t.route.Path, "error", err)
}

// schema translates s, found at the dot-separated path, into a document
// schema. depth counts the nodes above s.
func (t *translator) schema(path string, s schema.Schema, depth int) (*openapi2.SchemaRef, error) {
	if depth > t.cfg.MaxDepth {
		return nil, fmt.Errorf("%w (%d) at %s", ErrSchemaDepth, t.cfg.MaxDepth, path)
	}
	if isNil(s) {
		return nil, &UnsupportedSchemaTypeError{Path: path}
	}

	kind := s.Kind()
	typ, ok := kindTypes[kind]
	if !ok {
		return nil, &UnsupportedSchemaTypeError{Path: path, Kind: kind}
	}
	out := openapi.NewSchema(typ)

	switch kind {
	case schema.KindObject:
		obj, ok := s.(schema.ObjectSchema)
		if !ok {
			return nil, &UnsupportedSchemaTypeError{Path: path, Kind: kind}
		}
		for _, p := range obj.Properties() {
			child, err := t.schema(path+"."+p.Name, p.Schema, depth+1)
			if err != nil {
				if err = t.recover(err); err != nil {
					return nil, err
				}
				continue
			}
			out.Properties[p.Name] = child
			if p.Schema.IsRequired() {
				out.Required = append(out.Required, p.Name)
			}
		}
	case schema.KindArray:
		arr, ok := s.(schema.ArraySchema)
		if !ok {
			return nil, &UnsupportedSchemaTypeError{Path: path, Kind: kind}
		}
		if item := arr.Items(); !isNil(item) {
			child, err := t.schema(path+".items", item, depth+1)
			if err != nil {
				if err = t.recover(err); err != nil {
					return nil, err
				}
			}
			out.Items = child
		}
	}

	applyMetadata(out, s.Metadata())
	return &openapi2.SchemaRef{Value: out}, nil
}

// applyMetadata copies the attributes that are set; unset ones stay absent.
func applyMetadata(out *openapi2.Schema, m schema.Metadata) {
	out.Description = m.Description
	out.Default = m.Default
	out.Example = m.Example
	out.Enum = slices.Clone(m.Enum)
	out.Format = m.Format
	out.Pattern = m.Pattern
	out.Deprecated = m.Deprecated
	out.Min = clonePtr(m.Min)
	out.Max = clonePtr(m.Max)
	if m.MinLength != nil {
		out.MinLength = *m.MinLength
	}
	out.MaxLength = clonePtr(m.MaxLength)
	if m.MinItems != nil {
		out.MinItems = *m.MinItems
	}
	out.MaxItems = clonePtr(m.MaxItems)
	out.UniqueItems = m.UniqueItems
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// isNil reports whether v is nil or an interface holding a nil pointer, map,
// slice or func.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func:
		return rv.IsNil()
	}
	return false
}

// parameters expands the top-level properties of an object schema into
// parameters located in in. slot names the schema for error paths. A nil
// schema yields no parameters.
func (t *translator) parameters(slot, in string, s schema.Schema) ([]*openapi2.Parameter, error) {
	if isNil(s) {
		return nil, nil
	}
	obj, ok := s.(schema.ObjectSchema)
	if !ok || s.Kind() != schema.KindObject {
		return nil, t.recover(&UnsupportedSchemaTypeError{Path: slot, Kind: s.Kind()})
	}

	var params []*openapi2.Parameter
	for _, p := range obj.Properties() {
		ref, err := t.scalar(slot+"."+p.Name, p.Schema)
		if err != nil {
			return nil, err
		}
		if ref == nil {
			continue
		}
		param := openapi.NewParameter(p.Name, in, ref.Value)
		param.Required = param.Required || p.Schema.IsRequired()
		params = append(params, param)
	}
	return params, nil
}

// scalar translates a schema that must be expressible as a Swagger 2.0
// parameter or header, i.e. anything but an object. It returns nil, nil when
// the schema was skipped with a warning.
func (t *translator) scalar(path string, s schema.Schema) (*openapi2.SchemaRef, error) {
	ref, err := t.schema(path, s, 1)
	if err == nil && ref.Value.Type.Is(openapi3.TypeObject) {
		err = &UnsupportedSchemaTypeError{Path: path, Kind: schema.KindObject}
	}
	if err != nil {
		return nil, t.recover(err)
	}
	return ref, nil
}

// pathParameters builds one required parameter per template parameter, in
// template order. Types come from the matching property of params; without
// one the parameter is a plain string.
func (t *translator) pathParameters(tmpl PathTemplate, params schema.Schema) ([]*openapi2.Parameter, error) {
	declared := map[string]schema.Schema{}
	if !isNil(params) {
		obj, ok := params.(schema.ObjectSchema)
		if !ok || params.Kind() != schema.KindObject {
			if err := t.recover(&UnsupportedSchemaTypeError{Path: "params", Kind: params.Kind()}); err != nil {
				return nil, err
			}
		} else {
			for _, p := range obj.Properties() {
				declared[p.Name] = p.Schema
			}
		}
	}

	out := make([]*openapi2.Parameter, 0, len(tmpl.Params()))
	for _, name := range tmpl.Params() {
		param := openapi.NewParameter(name, openapi.InPath, openapi.NewSchema(openapi3.TypeString))
		if s, ok := declared[name]; ok {
			ref, err := t.scalar("params."+name, s)
			if err != nil {
				return nil, err
			}
			if ref != nil {
				param = openapi.NewParameter(name, openapi.InPath, ref.Value)
			}
		}
		if param.Pattern == "" {
			param.Pattern = tmpl.Pattern(name)
		}
		out = append(out, param)
	}
	return out, nil
}

// mergeParamMeta sets descriptions from metadata on parameters that have
// none. Parameter count and order never change.
func (t *translator) mergeParamMeta(params []*openapi2.Parameter, metas []ParamMeta) {
	for _, m := range metas {
		matched := false
		for _, p := range params {
			if p.Name != m.Name {
				continue
			}
			matched = true
			if p.Description == "" {
				p.Description = m.Description
			}
		}
		if !matched {
			t.cfg.Logger.Debug("routedoc: parameter metadata matches no parameter",
				"method", t.route.Method, "path", t.route.Path, "name", m.Name)
		}
	}
}
