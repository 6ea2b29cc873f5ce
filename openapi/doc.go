// Package openapi wraps the kin-openapi Swagger 2.0 model ([openapi2.T]) for
// the route documentation generator and encodes it as JSON or YAML.
//
// Request bodies are attached to operations under the [RequestBodyExtension]
// extension as an "in: body" parameter, so the parameter list holds only
// path, query and header parameters.
//
//	doc := openapi.DocBase(&openapi3.Info{Title: "Shop API", Version: "1.0.0"}, "/")
//	doc.SetOperation("/items/{id}", http.MethodGet, &openapi2.Operation{
//	    Summary:   "Fetch an item",
//	    Responses: map[string]*openapi2.Response{"200": openapi.NewResponse("OK", nil)},
//	})
//	b, err := doc.JSON()
package openapi
