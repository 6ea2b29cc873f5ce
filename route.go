package routedoc

import (
	"net/http"
	"slices"

	"github.com/Gobd/routedoc/schema"
)

type (
	// Route describes one registered route of a router.
	Route struct {
		Method string `json:"method"`
		// Path uses the router's colon parameter syntax, e.g. "/users/:id".
		Path     string    `json:"path"`
		Validate *Validate `json:"validate,omitempty"`
		Meta     *Meta     `json:"meta,omitempty"`
	}

	// Validate is the validation block of a route.
	Validate struct {
		// Type tags the request body encoding: "json", "form" or "multipart".
		Type    string
		Body    schema.Schema
		Query   schema.Schema
		Headers schema.Schema
		Params  schema.Schema
		// Output maps a status code (e.g. "200", "4XX") to its response.
		Output map[string]Output
	}

	// Output describes a response declared for one status code.
	Output struct {
		Description string
		Body        schema.Schema
		Headers     schema.Schema
	}

	// Meta carries documentation overrides for a route.
	Meta struct {
		Summary     string
		Description string
		OperationID string
		// Tags replaces the tags the tag strategy would derive.
		Tags       []string
		Deprecated bool
		// Parameters adds descriptions to parameters by name.
		Parameters []ParamMeta
		// Output is merged over Validate.Output, winning per status code.
		Output map[string]Output
	}

	// ParamMeta describes a parameter by name.
	ParamMeta struct {
		Name        string
		Description string
	}

	// Router is the view of a routing library the generator needs.
	Router interface {
		Prefix() string
		// Routes returns the routes in registration order. A nil slice
		// means the router exposes no route list.
		Routes() []Route
	}

	// Endpoint is the documentation bundle passed to the [RouteGroup]
	// registration helpers.
	Endpoint struct {
		Validate *Validate
		Meta     *Meta
	}
)

// RouteGroup is a minimal [Router]: a prefix plus an ordered route list.
type RouteGroup struct {
	prefix string
	routes []Route
}

// NewRouter returns an empty RouteGroup with the given prefix.
func NewRouter(prefix string) *RouteGroup {
	return &RouteGroup{
		prefix: prefix,
		routes: []Route{},
	}
}

// Prefix returns the prefix applied to every route of the group.
func (g *RouteGroup) Prefix() string {
	return g.prefix
}

// SetPrefix replaces the group prefix.
func (g *RouteGroup) SetPrefix(prefix string) {
	g.prefix = prefix
}

// Routes returns a copy of the registered routes.
func (g *RouteGroup) Routes() []Route {
	return slices.Clone(g.routes)
}

// Handle registers a route for method and path.
func (g *RouteGroup) Handle(method, path string, ep Endpoint) {
	g.routes = append(g.routes, Route{
		Method:   method,
		Path:     path,
		Validate: ep.Validate,
		Meta:     ep.Meta,
	})
}

// Get registers a GET route.
func (g *RouteGroup) Get(path string, ep Endpoint) {
	g.Handle(http.MethodGet, path, ep)
}

// Post registers a POST route.
func (g *RouteGroup) Post(path string, ep Endpoint) {
	g.Handle(http.MethodPost, path, ep)
}

// Put registers a PUT route.
func (g *RouteGroup) Put(path string, ep Endpoint) {
	g.Handle(http.MethodPut, path, ep)
}

// Patch registers a PATCH route.
func (g *RouteGroup) Patch(path string, ep Endpoint) {
	g.Handle(http.MethodPatch, path, ep)
}

// Delete registers a DELETE route.
func (g *RouteGroup) Delete(path string, ep Endpoint) {
	g.Handle(http.MethodDelete, path, ep)
}

// Head registers a HEAD route.
func (g *RouteGroup) Head(path string, ep Endpoint) {
	g.Handle(http.MethodHead, path, ep)
}

// Options registers an OPTIONS route.
func (g *RouteGroup) Options(path string, ep Endpoint) {
	g.Handle(http.MethodOptions, path, ep)
}
