package openapi

import (
	"net/http"
	"slices"
	"strings"

	"github.com/getkin/kin-openapi/openapi2"
	"github.com/getkin/kin-openapi/openapi3"
)

// SwaggerVersion is the value of the document's swagger key.
const SwaggerVersion = "2.0"

// Parameter locations.
const (
	InPath   = "path"
	InQuery  = "query"
	InHeader = "header"
	InBody   = "body"
)

// RequestBodyExtension is the operation extension holding the request body
// parameter. The body is kept out of the operation's parameter list, which
// lists path, query and header parameters only.
const RequestBodyExtension = "x-requestBody"

// Methods lists the HTTP methods a Swagger 2.0 path item can hold.
var Methods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

// Document is a Swagger 2.0 API description.
type Document struct {
	openapi2.T
}

// DocBase returns an empty Swagger 2.0 document. info is copied.
func DocBase(info *openapi3.Info, basePath string) *Document {
	d := &Document{T: openapi2.T{
		Swagger:  SwaggerVersion,
		BasePath: basePath,
		Paths:    map[string]*openapi2.PathItem{},
		Tags:     openapi3.Tags{},
	}}
	if info != nil {
		d.Info = *info
	}
	return d
}

// SetOperation stores op at path and method, replacing any operation already
// there. It reports whether one was replaced. Methods outside [Methods] are
// ignored.
func (d *Document) SetOperation(path, method string, op *openapi2.Operation) bool {
	method = strings.ToUpper(method)
	if !slices.Contains(Methods, method) {
		return false
	}
	if d.Paths == nil {
		d.Paths = map[string]*openapi2.PathItem{}
	}
	item := d.Paths[path]
	if item == nil {
		item = &openapi2.PathItem{}
		d.Paths[path] = item
	}
	replaced := item.GetOperation(method) != nil
	item.SetOperation(method, op)
	return replaced
}

// Operation returns the operation at path and method, or nil.
func (d *Document) Operation(path, method string) *openapi2.Operation {
	method = strings.ToUpper(method)
	item := d.Paths[path]
	if item == nil || !slices.Contains(Methods, method) {
		return nil
	}
	return item.GetOperation(method)
}

// AddTag appends a tag unless one with the same name exists.
func (d *Document) AddTag(name string) {
	if d.Tags.Get(name) != nil {
		return
	}
	d.Tags = append(d.Tags, &openapi3.Tag{Name: name})
}

// SetRequestBody attaches the body schema to op as a body parameter under
// [RequestBodyExtension].
func SetRequestBody(op *openapi2.Operation, desc string, required bool, schema *openapi2.SchemaRef) {
	if op.Extensions == nil {
		op.Extensions = map[string]any{}
	}
	op.Extensions[RequestBodyExtension] = &openapi2.Parameter{
		In:          InBody,
		Name:        InBody,
		Description: desc,
		Required:    required,
		Schema:      schema,
	}
}

// RequestBody returns the body parameter set by [SetRequestBody], or nil.
func RequestBody(op *openapi2.Operation) *openapi2.Parameter {
	if op == nil {
		return nil
	}
	p, _ := op.Extensions[RequestBodyExtension].(*openapi2.Parameter)
	return p
}

// NewSchema returns a schema of the given type. Object schemas start with an
// empty property set.
func NewSchema(typ string) *openapi2.Schema {
	s := &openapi2.Schema{Type: &openapi3.Types{typ}}
	if typ == openapi3.TypeObject {
		s.Properties = openapi2.Schemas{}
	}
	return s
}

// NewResponse returns a response with the given description and optional
// body schema.
func NewResponse(desc string, schema *openapi2.SchemaRef) *openapi2.Response {
	return &openapi2.Response{
		Description: desc,
		Schema:      schema,
	}
}

// NewParameter converts a scalar or array schema into a parameter located in
// in. Path parameters are always required.
func NewParameter(name, in string, s *openapi2.Schema) *openapi2.Parameter {
	p := &openapi2.Parameter{
		Name:        name,
		In:          in,
		Description: s.Description,
		Type:        cloneTypes(s.Type),
		Format:      s.Format,
		Pattern:     s.Pattern,
		Enum:        slices.Clone(s.Enum),
		Default:     s.Default,
		Minimum:     s.Min,
		Maximum:     s.Max,
		MinLength:   s.MinLength,
		MaxLength:   s.MaxLength,
		MinItems:    s.MinItems,
		MaxItems:    s.MaxItems,
		UniqueItems: s.UniqueItems,
		Items:       s.Items,
	}
	if in == InPath {
		p.Required = true
	}
	return p
}

// NewHeader converts a scalar schema into a response header.
func NewHeader(s *openapi2.Schema) *openapi2.Header {
	return &openapi2.Header{Parameter: openapi2.Parameter{
		Description: s.Description,
		Type:        cloneTypes(s.Type),
		Format:      s.Format,
		Pattern:     s.Pattern,
		Enum:        slices.Clone(s.Enum),
		Default:     s.Default,
	}}
}

// TypeName returns the first type of t, or "" when t is empty.
func TypeName(t *openapi3.Types) string {
	if s := t.Slice(); len(s) > 0 {
		return s[0]
	}
	return ""
}

func cloneTypes(t *openapi3.Types) *openapi3.Types {
	if t == nil {
		return nil
	}
	c := slices.Clone(*t)
	return &c
}
