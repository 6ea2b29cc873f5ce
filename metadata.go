package routedoc

import (
	"regexp"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

var basePathPattern = regexp.MustCompile(`^/`)

// Metadata is the document-level information passed to Generate.
type Metadata struct {
	// Info requires Title and Version.
	Info *openapi3.Info
	// BasePath is required and must start with "/".
	BasePath string
	Host     string
	Schemes  []string
	Consumes []string
	Produces []string
	// Tags are listed first in the document, before derived tags.
	Tags openapi3.Tags
}

// Validate checks the required fields and the format of the optional ones.
// Failures are reported as [validation.Errors] keyed by field.
func (m Metadata) Validate() error {
	errs := validation.Errors{
		"basePath": validation.Validate(m.BasePath, validation.Required, validation.Match(basePathPattern)),
		"schemes":  validation.Validate(m.Schemes, validation.Each(validation.In("http", "https", "ws", "wss"))),
	}
	if m.Info == nil {
		errs["info"] = validation.ErrRequired
		return errs.Filter()
	}

	info := m.Info
	errs["info"] = validation.ValidateStruct(info,
		validation.Field(&info.Title, validation.Required),
		validation.Field(&info.Version, validation.Required),
		validation.Field(&info.TermsOfService, is.URL),
	)
	if c := info.Contact; c != nil {
		errs["contact"] = validation.ValidateStruct(c,
			validation.Field(&c.Email, is.EmailFormat),
			validation.Field(&c.URL, is.URL),
		)
	}
	if l := info.License; l != nil {
		errs["license"] = validation.ValidateStruct(l,
			validation.Field(&l.Name, validation.Required),
			validation.Field(&l.URL, is.URL),
		)
	}
	return errs.Filter()
}
