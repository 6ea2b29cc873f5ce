package routedoc

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Gobd/routedoc/openapi"
	"github.com/getkin/kin-openapi/openapi2"
)

var bodyTypes = map[string]string{
	"json":      "application/json",
	"form":      "application/x-www-form-urlencoded",
	"multipart": "multipart/form-data",
}

// Result is the output of Generate.
type Result struct {
	Document *openapi.Document
	// Warnings lists the fields and routes left out of Document.
	Warnings Warnings
}

// Generate builds a Swagger 2.0 document from the registered routes. It
// reads the registry without modifying it, so it may be called any number of
// times; equal inputs give equal documents.
//
// Routes are processed in registration order. When two routes share a path
// and method, the later one replaces the earlier.
func (g *Generator) Generate(meta Metadata, opts ...Option) (*Result, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := meta.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingMetadata, err)
	}

	info := *meta.Info
	doc := openapi.DocBase(&info, meta.BasePath)
	doc.Host = meta.Host
	doc.Schemes = slices.Clone(meta.Schemes)
	doc.Consumes = slices.Clone(meta.Consumes)
	doc.Produces = slices.Clone(meta.Produces)
	for _, tag := range meta.Tags {
		if tag != nil && doc.Tags.Get(tag.Name) == nil {
			tg := *tag
			doc.Tags = append(doc.Tags, &tg)
		}
	}

	type opKey struct{ path, method string }
	var (
		warnings Warnings
		order    []opKey
	)
	for _, rt := range g.routes {
		t := &translator{cfg: &cfg, route: rt, warnings: &warnings}

		tmpl, err := ParsePath(rt.Path)
		if err != nil {
			if cfg.Strict {
				return nil, err
			}
			t.warn(err)
			continue
		}

		op, err := t.operation(tmpl)
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", rt.Method, rt.Path, err)
		}

		path := tmpl.String()
		cfg.Logger.Debug("routedoc: route documented", "method", rt.Method, "path", path)
		if doc.SetOperation(path, rt.Method, op) {
			cfg.Logger.Debug("routedoc: operation replaced", "method", rt.Method, "path", path)
		} else {
			order = append(order, opKey{path, rt.Method})
		}
	}

	for _, k := range order {
		for _, tag := range doc.Operation(k.path, k.method).Tags {
			doc.AddTag(tag)
		}
	}

	return &Result{Document: doc, Warnings: warnings}, nil
}

// GenerateSpec is Generate with warnings sent to the configured logger.
func (g *Generator) GenerateSpec(meta Metadata, opts ...Option) (*openapi.Document, error) {
	res, err := g.Generate(meta, opts...)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	for _, w := range res.Warnings {
		cfg.Logger.Warn("routedoc: omitted from document", "method", w.Method, "path", w.Path, "error", w.Err)
	}
	return res.Document, nil
}

func (t *translator) operation(tmpl PathTemplate) (*openapi2.Operation, error) {
	op := &openapi2.Operation{}
	v := t.route.Validate
	if v == nil {
		v = &Validate{}
	}

	if v.Type != "" {
		mime, ok := bodyTypes[strings.ToLower(v.Type)]
		if ok {
			op.Consumes = []string{mime}
		} else {
			t.warn(fmt.Errorf("unknown body type %q", v.Type))
		}
	}

	pathParams, err := t.pathParameters(tmpl, v.Params)
	if err != nil {
		return nil, err
	}
	query, err := t.parameters("query", openapi.InQuery, v.Query)
	if err != nil {
		return nil, err
	}
	headers, err := t.parameters("headers", openapi.InHeader, v.Headers)
	if err != nil {
		return nil, err
	}
	op.Parameters = append(op.Parameters, pathParams...)
	op.Parameters = append(op.Parameters, query...)
	op.Parameters = append(op.Parameters, headers...)

	if !isNil(v.Body) {
		ref, err := t.schema("body", v.Body, 1)
		if err != nil {
			if err = t.recover(err); err != nil {
				return nil, err
			}
		}
		if ref != nil {
			openapi.SetRequestBody(op, ref.Value.Description, v.Body.IsRequired(), ref)
		}
	}

	if op.Responses, err = t.responses(); err != nil {
		return nil, err
	}

	if m := t.route.Meta; m != nil {
		op.Summary = m.Summary
		op.Description = m.Description
		op.OperationID = m.OperationID
		op.Deprecated = m.Deprecated
		op.Tags = slices.Clone(m.Tags)
		t.mergeParamMeta(op.Parameters, m.Parameters)
	}
	if len(op.Tags) == 0 {
		op.Tags = t.cfg.TagStrategy(tmpl, t.route.Method)
	}
	return op, nil
}
