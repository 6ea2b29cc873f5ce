// Package routedoc generates Swagger 2.0 API documents from route
// definitions that carry validation schemas.
//
// Register routers with a [Generator], then generate:
//
//	users := routedoc.NewRouter("/api")
//	users.Post("/users/:id", routedoc.Endpoint{
//	    Validate: &routedoc.Validate{
//	        Type:   "json",
//	        Params: schema.Object(schema.Field("id", schema.Integer())),
//	        Body:   schema.Object(schema.Field("name", schema.String(schema.Required))),
//	    },
//	})
//
//	g := routedoc.New()
//	if err := g.AddRouter(users); err != nil {
//	    return err
//	}
//	res, err := g.Generate(routedoc.Metadata{
//	    Info:     &openapi3.Info{Title: "Users", Version: "1.0.0"},
//	    BasePath: "/",
//	})
//
// Schema fields with no document representation are left out and reported
// in [Result.Warnings]; [WithStrict] makes them errors instead.
//
// Schema properties are encoded as a JSON object, so they appear in sorted
// key order rather than declaration order. The required list keeps
// declaration order.
//
// Sub-packages:
//   - schema – typed schema nodes with builder rules and value validation
//   - openapi – the kin-openapi Swagger 2.0 model with JSON and YAML encoding
package routedoc
