package routedoc_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	rd "github.com/Gobd/routedoc"
	"github.com/Gobd/routedoc/openapi"
	"github.com/Gobd/routedoc/schema"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signupEndpoint() rd.Endpoint {
	return rd.Endpoint{
		Meta: &rd.Meta{Summary: "User Signup"},
		Validate: &rd.Validate{
			Type: "json",
			Body: schema.Object(
				schema.Field("username", schema.String(schema.Alphanum(), schema.Min(3), schema.Max(30), schema.Required)),
			),
			Output: map[string]rd.Output{
				"200": {Body: schema.Object(
					schema.Field("userId", schema.String(schema.Describe("Newly created user id"))),
				)},
			},
		},
	}
}

func generate(t *testing.T, routers []rd.Router, opts ...rd.Option) *rd.Result {
	t.Helper()
	g := rd.New()
	for _, r := range routers {
		require.NoError(t, g.AddRouter(r))
	}
	res, err := g.Generate(validMetadata(), opts...)
	require.NoError(t, err)
	return res
}

func TestGenerate_TopLevelKeys(t *testing.T) {
	router := rd.NewRouter("")
	router.Get("/signup", signupEndpoint())

	res := generate(t, []rd.Router{router})
	out, err := res.Document.JSON()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(out, &doc))
	for _, key := range []string{"info", "basePath", "swagger", "paths", "tags"} {
		assert.Contains(t, doc, key)
	}
	assert.Equal(t, "2.0", doc["swagger"])
}

func TestGenerate_SignupOperation(t *testing.T) {
	router := rd.NewRouter("")
	router.Get("/signup", signupEndpoint())

	res := generate(t, []rd.Router{router})
	op := res.Document.Operation("/signup", "GET")
	require.NotNil(t, op)

	assert.Equal(t, "User Signup", op.Summary)
	assert.Equal(t, []string{"application/json"}, op.Consumes)
	assert.Empty(t, op.Parameters)

	body := openapi.RequestBody(op)
	require.NotNil(t, body)
	assert.Equal(t, openapi.InBody, body.In)
	bodySchema := body.Schema.Value
	assert.Equal(t, []string{"username"}, bodySchema.Required)
	username := bodySchema.Properties["username"].Value
	assert.Equal(t, uint64(3), username.MinLength)
	assert.Equal(t, uint64(30), *username.MaxLength)

	require.Contains(t, op.Responses, "200")
	resp := op.Responses["200"]
	assert.Equal(t, "Success", resp.Description)
	assert.Equal(t, "Newly created user id", resp.Schema.Value.Properties["userId"].Value.Description)

	assert.Equal(t, []string{"signup"}, op.Tags)
	assert.NotNil(t, res.Document.Tags.Get("signup"))
	assert.Empty(t, res.Warnings)
}

func TestGenerate_RouteParameters(t *testing.T) {
	ep := signupEndpoint()
	ep.Meta.Parameters = []rd.ParamMeta{{Name: "action", Description: "action to take"}}
	router := rd.NewRouter("")
	router.Get("/:action/:id/", ep)

	res := generate(t, []rd.Router{router})
	require.Contains(t, res.Document.Paths, "/{action}/{id}/")

	op := res.Document.Operation("/{action}/{id}/", "GET")
	require.Len(t, op.Parameters, 2)
	assert.Equal(t, "action", op.Parameters[0].Name)
	assert.Equal(t, "action to take", op.Parameters[0].Description)
	assert.Equal(t, "id", op.Parameters[1].Name)
	assert.Empty(t, op.Parameters[1].Description)
	for _, p := range op.Parameters {
		assert.Equal(t, openapi.InPath, p.In)
		assert.True(t, p.Required)
		assert.Equal(t, "string", openapi.TypeName(p.Type))
	}
}

func TestGenerate_ParameterPlacement(t *testing.T) {
	router := rd.NewRouter("/api")
	router.Get("/users/:id", rd.Endpoint{Validate: &rd.Validate{
		Params:  schema.Object(schema.Field("id", schema.Integer(schema.Min(1)))),
		Query:   schema.Object(schema.Field("expand", schema.Bool())),
		Headers: schema.Object(schema.Field("X-Request-Id", schema.String(schema.Required))),
	}})

	res := generate(t, []rd.Router{router})
	op := res.Document.Operation("/api/users/{id}", "GET")
	require.NotNil(t, op)
	require.Len(t, op.Parameters, 3)

	assert.Equal(t, "id", op.Parameters[0].Name)
	assert.Equal(t, openapi.InPath, op.Parameters[0].In)
	assert.Equal(t, "integer", openapi.TypeName(op.Parameters[0].Type))

	assert.Equal(t, "expand", op.Parameters[1].Name)
	assert.Equal(t, openapi.InQuery, op.Parameters[1].In)
	assert.False(t, op.Parameters[1].Required)

	assert.Equal(t, "X-Request-Id", op.Parameters[2].Name)
	assert.Equal(t, openapi.InHeader, op.Parameters[2].In)
	assert.True(t, op.Parameters[2].Required)

	assert.Nil(t, openapi.RequestBody(op))
	assert.Nil(t, op.Consumes)
}

func TestGenerate_DefaultResponsesDisabled(t *testing.T) {
	router := rd.NewRouter("")
	router.Get("/empty-default-response", rd.Endpoint{Validate: &rd.Validate{
		Output: map[string]rd.Output{"201": {Body: schema.Object(schema.Field("ok", schema.Bool()))}},
	}})

	res := generate(t, []rd.Router{router}, rd.WithDefaultResponses(nil))
	responses := res.Document.Operation("/empty-default-response", "GET").Responses
	assert.NotContains(t, responses, "200")
	require.Contains(t, responses, "201")
	assert.Equal(t, "Created", responses["201"].Description)
}

func TestGenerate_DefaultResponsesAdded(t *testing.T) {
	router := rd.NewRouter("")
	router.Get("/only-201", rd.Endpoint{Validate: &rd.Validate{
		Output: map[string]rd.Output{"201": {}},
	}})
	router.Get("/nothing", rd.Endpoint{})

	res := generate(t, []rd.Router{router})
	assert.Contains(t, res.Document.Operation("/only-201", "GET").Responses, "200")
	assert.Contains(t, res.Document.Operation("/only-201", "GET").Responses, "201")

	responses := res.Document.Operation("/nothing", "GET").Responses
	require.Len(t, responses, 1)
	assert.Equal(t, "Success", responses["200"].Description)
}

func TestGenerate_OutputOutsideValidate(t *testing.T) {
	router := rd.NewRouter("")
	router.Get("/output-outside-validate", rd.Endpoint{
		Validate: &rd.Validate{
			Output: map[string]rd.Output{"201": {Body: schema.Object(schema.Field("ok", schema.Bool()))}},
		},
		Meta: &rd.Meta{
			Output: map[string]rd.Output{"200": {Description: "Listed"}},
		},
	})

	res := generate(t, []rd.Router{router}, rd.WithDefaultResponses(nil))
	responses := res.Document.Operation("/output-outside-validate", "GET").Responses
	require.Contains(t, responses, "200")
	require.Contains(t, responses, "201")
	assert.Equal(t, "Listed", responses["200"].Description)
}

func TestGenerate_MetaOutputWinsPerCode(t *testing.T) {
	router := rd.NewRouter("")
	router.Get("/x", rd.Endpoint{
		Validate: &rd.Validate{Output: map[string]rd.Output{"200": {Description: "inside"}}},
		Meta:     &rd.Meta{Output: map[string]rd.Output{"200": {Description: "outside"}}},
	})

	res := generate(t, []rd.Router{router})
	assert.Equal(t, "outside", res.Document.Operation("/x", "GET").Responses["200"].Description)
}

func TestGenerate_ResponseHeaders(t *testing.T) {
	router := rd.NewRouter("")
	router.Post("/things", rd.Endpoint{Validate: &rd.Validate{
		Output: map[string]rd.Output{"201": {
			Description: "Created thing",
			Headers: schema.Object(
				schema.Field("Location", schema.String(schema.Describe("thing URL"))),
				schema.Field("X-Meta", schema.Object()),
			),
		}},
	}})

	res := generate(t, []rd.Router{router})
	resp := res.Document.Operation("/things", "POST").Responses["201"]
	require.Contains(t, resp.Headers, "Location")
	assert.Equal(t, "string", openapi.TypeName(resp.Headers["Location"].Type))
	assert.Equal(t, "thing URL", resp.Headers["Location"].Description)
	assert.NotContains(t, resp.Headers, "X-Meta")
	assert.True(t, res.Warnings.Has(rd.ErrUnsupportedSchemaType))
}

func TestGenerate_RouterPrefix(t *testing.T) {
	router := rd.NewRouter("/api")
	router.Get("/signup", rd.Endpoint{Meta: &rd.Meta{Summary: "User Signup"}, Validate: &rd.Validate{}})

	res := generate(t, []rd.Router{router})
	assert.Contains(t, res.Document.Paths, "/api/signup")
}

func TestGenerate_PrefixOption(t *testing.T) {
	router := rd.NewRouter("/api")
	router.Get("/signup", rd.Endpoint{Meta: &rd.Meta{Summary: "User Signup"}, Validate: &rd.Validate{}})

	g := rd.New()
	require.NoError(t, g.AddRouter(router, rd.WithPrefix("/other-api")))
	res, err := g.Generate(validMetadata())
	require.NoError(t, err)
	assert.Contains(t, res.Document.Paths, "/other-api/signup")
	assert.NotContains(t, res.Document.Paths, "/api/signup")
}

func TestGenerate_Idempotent(t *testing.T) {
	router := rd.NewRouter("/api")
	router.Get("/signup", signupEndpoint())
	router.Post("/users/:id", rd.Endpoint{Validate: &rd.Validate{
		Params: schema.Object(schema.Field("id", schema.Integer())),
		Body:   schema.Object(schema.Field("tags", schema.Array(schema.Any()))),
	}})

	g := rd.New()
	require.NoError(t, g.AddRouter(router))

	first, err := g.Generate(validMetadata())
	require.NoError(t, err)
	second, err := g.Generate(validMetadata())
	require.NoError(t, err)

	a, err := first.Document.JSON()
	require.NoError(t, err)
	b, err := second.Document.JSON()
	require.NoError(t, err)
	assert.JSONEq(t, string(a), string(b))
	assert.Equal(t, first.Warnings, second.Warnings)
	assert.Len(t, g.Routes(), 2)
}

func TestGenerate_LastRegistrationWins(t *testing.T) {
	first := rd.NewRouter("")
	first.Get("/dup", rd.Endpoint{Meta: &rd.Meta{Summary: "first", Tags: []string{"old"}}})
	second := rd.NewRouter("")
	second.Get("/dup", rd.Endpoint{Meta: &rd.Meta{Summary: "second", Tags: []string{"new"}}})

	res := generate(t, []rd.Router{first, second})
	op := res.Document.Operation("/dup", "GET")
	assert.Equal(t, "second", op.Summary)
	assert.Nil(t, res.Document.Tags.Get("old"))
	assert.NotNil(t, res.Document.Tags.Get("new"))
}

func TestGenerate_SamePathDifferentMethods(t *testing.T) {
	router := rd.NewRouter("")
	router.Get("/items", rd.Endpoint{})
	router.Post("/items", rd.Endpoint{})

	res := generate(t, []rd.Router{router})
	item := res.Document.Paths["/items"]
	require.NotNil(t, item)
	assert.Len(t, item.Operations(), 2)
	assert.NotNil(t, item.Get)
	assert.NotNil(t, item.Post)
}

func TestGenerate_Tags(t *testing.T) {
	router := rd.NewRouter("")
	router.Get("/users", rd.Endpoint{})
	router.Get("/orders/:id", rd.Endpoint{})
	router.Get("/users/:id", rd.Endpoint{Meta: &rd.Meta{Tags: []string{"accounts"}}})
	router.Get("/:id", rd.Endpoint{})

	g := rd.New()
	require.NoError(t, g.AddRouter(router))
	meta := validMetadata()
	meta.Tags = openapi3.Tags{{Name: "orders", Description: "Order handling"}}
	res, err := g.Generate(meta)
	require.NoError(t, err)

	var names []string
	for _, tag := range res.Document.Tags {
		names = append(names, tag.Name)
	}
	assert.Equal(t, []string{"orders", "users", "accounts"}, names)
	assert.Equal(t, "Order handling", res.Document.Tags.Get("orders").Description)
	assert.Empty(t, res.Document.Operation("/{id}", "GET").Tags)
}

func TestGenerate_TagStrategy(t *testing.T) {
	router := rd.NewRouter("")
	router.Get("/users", rd.Endpoint{})

	res := generate(t, []rd.Router{router}, rd.WithTagStrategy(func(_ rd.PathTemplate, method string) []string {
		return []string{method}
	}))
	assert.Equal(t, []string{"GET"}, res.Document.Operation("/users", "GET").Tags)
}

func TestGenerate_OperationMetadata(t *testing.T) {
	router := rd.NewRouter("")
	router.Delete("/users/:id", rd.Endpoint{Meta: &rd.Meta{
		Summary:     "Remove user",
		Description: "Deletes the account.",
		OperationID: "deleteUser",
		Deprecated:  true,
	}})

	res := generate(t, []rd.Router{router})
	op := res.Document.Operation("/users/{id}", "DELETE")
	assert.Equal(t, "Remove user", op.Summary)
	assert.Equal(t, "Deletes the account.", op.Description)
	assert.Equal(t, "deleteUser", op.OperationID)
	assert.True(t, op.Deprecated)
}

func TestGenerate_BodyTypes(t *testing.T) {
	router := rd.NewRouter("")
	router.Post("/form", rd.Endpoint{Validate: &rd.Validate{Type: "form"}})
	router.Post("/upload", rd.Endpoint{Validate: &rd.Validate{Type: "multipart"}})
	router.Post("/odd", rd.Endpoint{Validate: &rd.Validate{Type: "xml"}})

	res := generate(t, []rd.Router{router})
	assert.Equal(t, []string{"application/x-www-form-urlencoded"}, res.Document.Operation("/form", "POST").Consumes)
	assert.Equal(t, []string{"multipart/form-data"}, res.Document.Operation("/upload", "POST").Consumes)
	assert.Nil(t, res.Document.Operation("/odd", "POST").Consumes)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, "/odd", res.Warnings[0].Path)
}

func TestGenerate_UnsupportedStrict(t *testing.T) {
	router := rd.NewRouter("")
	router.Post("/x", rd.Endpoint{Validate: &rd.Validate{
		Body: schema.Object(schema.Field("blob", schema.Any())),
	}})
	g := rd.New()
	require.NoError(t, g.AddRouter(router))

	res, err := g.Generate(validMetadata())
	require.NoError(t, err)
	assert.NotContains(t, openapi.RequestBody(res.Document.Operation("/x", "POST")).Schema.Value.Properties, "blob")
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, "POST", res.Warnings[0].Method)

	res, err = g.Generate(validMetadata(), rd.WithStrict(true))
	assert.ErrorIs(t, err, rd.ErrUnsupportedSchemaType)
	assert.Nil(t, res)
}

func TestGenerate_NilPointerSchemaSlots(t *testing.T) {
	var none *schema.Node
	router := rd.NewRouter("")
	router.Post("/items/:id", rd.Endpoint{Validate: &rd.Validate{
		Params:  none,
		Query:   none,
		Headers: none,
		Body:    none,
		Output: map[string]rd.Output{
			"201": {Description: "Created", Body: none, Headers: none},
		},
	}})

	var res *rd.Result
	require.NotPanics(t, func() { res = generate(t, []rd.Router{router}) })

	op := res.Document.Operation("/items/{id}", "POST")
	require.NotNil(t, op)
	require.Len(t, op.Parameters, 1)
	assert.Equal(t, "id", op.Parameters[0].Name)
	assert.Nil(t, openapi.RequestBody(op))

	require.Contains(t, op.Responses, "201")
	assert.Equal(t, "Created", op.Responses["201"].Description)
	assert.Nil(t, op.Responses["201"].Schema)
	assert.Empty(t, op.Responses["201"].Headers)
	assert.Empty(t, res.Warnings)
}

func TestGenerate_MalformedPath(t *testing.T) {
	router := rd.NewRouter("")
	router.Get("/ok", rd.Endpoint{})
	router.Get("/bad/:", rd.Endpoint{})
	g := rd.New()
	require.NoError(t, g.AddRouter(router))

	res, err := g.Generate(validMetadata())
	require.NoError(t, err)
	assert.Len(t, res.Document.Paths, 1)
	assert.True(t, res.Warnings.Has(rd.ErrInvalidPath))

	_, err = g.Generate(validMetadata(), rd.WithStrict(true))
	assert.ErrorIs(t, err, rd.ErrInvalidPath)
}

func TestGenerate_MissingMetadata(t *testing.T) {
	g := rd.New()
	_, err := g.Generate(rd.Metadata{BasePath: "/"})
	assert.ErrorIs(t, err, rd.ErrMissingMetadata)

	meta := validMetadata()
	meta.Info.Version = ""
	_, err = g.Generate(meta)
	assert.ErrorIs(t, err, rd.ErrMissingMetadata)
}

func TestGenerate_InvalidConfig(t *testing.T) {
	_, err := rd.New().Generate(validMetadata(), rd.WithMaxDepth(0))
	assert.ErrorIs(t, err, rd.ErrInvalidConfig)
}

func TestGenerate_EmptyRegistry(t *testing.T) {
	res, err := rd.New().Generate(validMetadata())
	require.NoError(t, err)
	assert.Empty(t, res.Document.Paths)
	assert.Empty(t, res.Document.Tags)
	assert.Empty(t, res.Warnings)
}

func TestGenerate_DoesNotMutateInputs(t *testing.T) {
	meta := validMetadata()
	meta.Tags = openapi3.Tags{{Name: "a"}}
	router := rd.NewRouter("")
	router.Get("/b", rd.Endpoint{})
	g := rd.New()
	require.NoError(t, g.AddRouter(router))

	res, err := g.Generate(meta)
	require.NoError(t, err)
	res.Document.Info.Title = "changed"
	res.Document.Tags[0].Name = "changed"

	assert.Equal(t, "Example API", meta.Info.Title)
	assert.Equal(t, "a", meta.Tags[0].Name)
}

func TestGenerateSpec_LogsWarnings(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	router := rd.NewRouter("")
	router.Post("/x", rd.Endpoint{Validate: &rd.Validate{
		Body: schema.Object(schema.Field("blob", schema.Any())),
	}})
	g := rd.New()
	require.NoError(t, g.AddRouter(router))

	doc, err := g.GenerateSpec(validMetadata(), rd.WithLogger(logger))
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "body.blob")
}
