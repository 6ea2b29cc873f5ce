package routedoc

import (
	"maps"
	"net/http"
	"slices"
	"strconv"

	"github.com/Gobd/routedoc/openapi"
	"github.com/Gobd/routedoc/schema"
	"github.com/getkin/kin-openapi/openapi2"
)

// responses assembles the response map of an operation. Outputs declared in
// the route's validation block come first; metadata outputs replace them per
// status code. Default responses fill in codes that are still missing.
func (t *translator) responses() (map[string]*openapi2.Response, error) {
	outputs := map[string]Output{}
	if t.route.Validate != nil {
		maps.Copy(outputs, t.route.Validate.Output)
	}
	if t.route.Meta != nil {
		maps.Copy(outputs, t.route.Meta.Output)
	}

	out := make(map[string]*openapi2.Response, len(outputs)+len(t.cfg.DefaultResponses))
	for _, code := range slices.Sorted(maps.Keys(outputs)) {
		resp, err := t.response(code, outputs[code])
		if err != nil {
			return nil, err
		}
		out[code] = resp
	}

	for code, desc := range t.cfg.DefaultResponses {
		if _, ok := out[code]; !ok {
			out[code] = openapi.NewResponse(desc, nil)
		}
	}
	return out, nil
}

func (t *translator) response(code string, o Output) (*openapi2.Response, error) {
	resp := openapi.NewResponse(t.describe(code, o), nil)

	if !isNil(o.Body) {
		ref, err := t.schema("output."+code+".body", o.Body, 1)
		if err != nil {
			if err = t.recover(err); err != nil {
				return nil, err
			}
		}
		resp.Schema = ref
	}

	if isNil(o.Headers) {
		return resp, nil
	}
	slot := "output." + code + ".headers"
	obj, ok := o.Headers.(schema.ObjectSchema)
	if !ok || o.Headers.Kind() != schema.KindObject {
		return resp, t.recover(&UnsupportedSchemaTypeError{Path: slot, Kind: o.Headers.Kind()})
	}
	for _, p := range obj.Properties() {
		ref, err := t.scalar(slot+"."+p.Name, p.Schema)
		if err != nil {
			return nil, err
		}
		if ref == nil {
			continue
		}
		if resp.Headers == nil {
			resp.Headers = map[string]*openapi2.Header{}
		}
		resp.Headers[p.Name] = openapi.NewHeader(ref.Value)
	}
	return resp, nil
}

// describe picks the response description: the output's own, then the
// configured default for the code, then the HTTP status text.
func (t *translator) describe(code string, o Output) string {
	if o.Description != "" {
		return o.Description
	}
	if desc := t.cfg.DefaultResponses[code]; desc != "" {
		return desc
	}
	if n, err := strconv.Atoi(code); err == nil {
		if text := http.StatusText(n); text != "" {
			return text
		}
	}
	return "Response"
}
