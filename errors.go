package routedoc

import (
	"errors"
	"fmt"

	"github.com/Gobd/routedoc/schema"
)

// Registration errors (returned by AddRouter)
var (
	// ErrInvalidRouter indicates a router without a route list or with an
	// invalid route. No route of that router is registered.
	ErrInvalidRouter = errors.New("routedoc: invalid router")
)

// Generation errors (returned by Generate)
var (
	// ErrMissingMetadata indicates required document metadata (info.title,
	// info.version, basePath) is absent or malformed.
	ErrMissingMetadata = errors.New("routedoc: missing or invalid metadata")

	// ErrInvalidConfig indicates an option produced an unusable configuration.
	ErrInvalidConfig = errors.New("routedoc: invalid configuration")

	// ErrInvalidPath indicates a route path with malformed parameter syntax.
	// The route is skipped unless strict mode is on.
	ErrInvalidPath = errors.New("routedoc: malformed path")

	// ErrUnsupportedSchemaType indicates a schema node whose kind has no
	// document representation. The field is omitted unless strict mode is on.
	ErrUnsupportedSchemaType = errors.New("routedoc: unsupported schema type")

	// ErrSchemaDepth indicates a schema nested deeper than the configured
	// maximum, usually because it is cyclic. Always fatal.
	ErrSchemaDepth = errors.New("routedoc: schema exceeds maximum depth")
)

// UnsupportedSchemaTypeError reports the schema node that could not be
// translated. It matches [ErrUnsupportedSchemaType] with errors.Is.
type UnsupportedSchemaTypeError struct {
	// Path is the dot-separated field path from the schema root,
	// e.g. "body.user.tags.items".
	Path string
	Kind schema.Kind
}

func (e *UnsupportedSchemaTypeError) Error() string {
	if e.Kind == "" {
		return fmt.Sprintf("%s: missing schema at %s", ErrUnsupportedSchemaType, e.Path)
	}
	return fmt.Sprintf("%s: %q at %s", ErrUnsupportedSchemaType, e.Kind, e.Path)
}

func (e *UnsupportedSchemaTypeError) Is(target error) bool {
	return target == ErrUnsupportedSchemaType
}
