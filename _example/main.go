// Command example documents a small user API and prints the generated
// Swagger 2.0 document.
//
// Run:
//
//	go run ./_example          # JSON
//	go run ./_example -yaml    # YAML
package main

import (
	"flag"
	"log/slog"
	"os"

	rd "github.com/Gobd/routedoc"
	"github.com/Gobd/routedoc/schema"
	"github.com/getkin/kin-openapi/openapi3"
)

var user = schema.Object(
	schema.Field("id", schema.Integer(schema.Describe("user id"))),
	schema.Field("username", schema.String(schema.Alphanum(), schema.Min(3), schema.Max(30), schema.Required)),
	schema.Field("email", schema.String(schema.Email(), schema.Required)),
	schema.Field("roles", schema.Array(schema.String(schema.Valid("admin", "member")), schema.Unique())),
)

var apiError = schema.Object(
	schema.Field("error", schema.String(schema.Required)),
)

func main() {
	asYAML := flag.Bool("yaml", false, "print YAML instead of JSON")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

	users := rd.NewRouter("/api")
	users.Get("/users", rd.Endpoint{
		Meta: &rd.Meta{Summary: "List users", OperationID: "listUsers"},
		Validate: &rd.Validate{
			Query: schema.Object(
				schema.Field("page", schema.Integer(schema.Min(1), schema.Default(1))),
				schema.Field("role", schema.String(schema.Valid("admin", "member"))),
			),
			Output: map[string]rd.Output{
				"200": {Body: schema.Array(user)},
			},
		},
	})
	users.Post("/users", rd.Endpoint{
		Meta: &rd.Meta{Summary: "Create a user", OperationID: "createUser"},
		Validate: &rd.Validate{
			Type: "json",
			Body: user,
			Output: map[string]rd.Output{
				"201": {
					Body:    user,
					Headers: schema.Object(schema.Field("Location", schema.String(schema.Describe("URL of the new user")))),
				},
				"400": {Description: "Validation error", Body: apiError},
			},
		},
	})
	users.Get(`/users/:id(\d+)`, rd.Endpoint{
		Meta: &rd.Meta{
			Summary:    "Fetch a user",
			Parameters: []rd.ParamMeta{{Name: "id", Description: "user id"}},
			Output:     map[string]rd.Output{"404": {Body: apiError}},
		},
		Validate: &rd.Validate{
			Params: schema.Object(schema.Field("id", schema.Integer(schema.Min(1)))),
			Output: map[string]rd.Output{"200": {Body: user}},
		},
	})

	g := rd.New()
	if err := g.AddRouter(users); err != nil {
		logger.Error("register routes", "error", err)
		os.Exit(1)
	}

	doc, err := g.GenerateSpec(rd.Metadata{
		Info: &openapi3.Info{
			Title:       "Example API",
			Description: "Demonstrates routedoc",
			Version:     "0.1.0",
		},
		BasePath: "/",
		Schemes:  []string{"https"},
		Produces: []string{"application/json"},
	}, rd.WithLogger(logger))
	if err != nil {
		logger.Error("generate document", "error", err)
		os.Exit(1)
	}

	out, err := doc.JSON()
	if *asYAML {
		out, err = doc.YAML()
	}
	if err != nil {
		logger.Error("encode document", "error", err)
		os.Exit(1)
	}
	if _, err := os.Stdout.Write(out); err != nil {
		logger.Error("write document", "error", err)
		os.Exit(1)
	}
}
