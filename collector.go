package routedoc

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Gobd/routedoc/openapi"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// knownMethods are the methods a Swagger 2.0 path item can hold.
var knownMethods = func() []any {
	out := make([]any, len(openapi.Methods))
	for i, m := range openapi.Methods {
		out[i] = m
	}
	return out
}()

// Generator accumulates routes from routers and generates documents from
// them. It is not safe for concurrent use: calls to AddRouter must be
// serialized by the caller.
type Generator struct {
	routes []Route
}

// New returns a Generator with no routes.
func New() *Generator {
	return &Generator{}
}

// RouterOption configures a single AddRouter call.
type RouterOption func(*routerOptions)

type routerOptions struct {
	prefix string
}

// WithPrefix replaces the router's own prefix for this registration. The
// prefixes are not combined. An empty prefix keeps the router's prefix.
func WithPrefix(prefix string) RouterOption {
	return func(o *routerOptions) {
		o.prefix = prefix
	}
}

// AddRouter registers every route of r, in order, after the routes already
// registered. Each route path is joined to the router prefix (or the
// WithPrefix override).
//
// AddRouter fails with [ErrInvalidRouter] when r is nil, exposes no route
// list, or holds a route with an empty path or unknown method. Nothing from
// r is registered then; earlier registrations are untouched.
func (g *Generator) AddRouter(r Router, opts ...RouterOption) error {
	if isNil(r) {
		return fmt.Errorf("%w: nil router", ErrInvalidRouter)
	}
	routes := r.Routes()
	if routes == nil {
		return fmt.Errorf("%w: router exposes no route list", ErrInvalidRouter)
	}

	var o routerOptions
	for _, opt := range opts {
		opt(&o)
	}
	prefix := r.Prefix()
	if o.prefix != "" {
		prefix = o.prefix
	}

	collected := make([]Route, 0, len(routes))
	for i, rt := range routes {
		rt.Method = strings.ToUpper(rt.Method)
		if err := validateRoute(&rt); err != nil {
			return fmt.Errorf("%w: route %d (%s %s): %w", ErrInvalidRouter, i, rt.Method, rt.Path, err)
		}
		rt.Path = JoinPath(prefix, rt.Path)
		collected = append(collected, rt)
	}
	g.routes = append(g.routes, collected...)
	return nil
}

// Routes returns a copy of the registered routes with their full paths.
func (g *Generator) Routes() []Route {
	return slices.Clone(g.routes)
}

func validateRoute(rt *Route) error {
	return validation.ValidateStruct(rt,
		validation.Field(&rt.Method, validation.Required, validation.In(knownMethods...)),
		validation.Field(&rt.Path, validation.Required),
	)
}
