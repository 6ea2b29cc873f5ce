// Package schema describes request and response shapes as a tree of typed
// nodes that can be introspected by the route documentation generator.
//
// Any type implementing [Schema] is accepted by the generator. Object nodes
// additionally implement [ObjectSchema] and array nodes [ArraySchema]. The
// [Node] builders in this package are one such implementation:
//
//	body := schema.Object(
//	    schema.Field("username", schema.String(schema.Alphanum(), schema.Min(3), schema.Max(30), schema.Required)),
//	    schema.Field("tags", schema.Array(schema.String(), schema.Unique())),
//	)
//
// Nodes also check decoded values against themselves with [Node.Validate].
package schema
