package routedoc

import (
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/asaskevich/govalidator"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DefaultMaxDepth is the default nesting limit for schema translation.
const DefaultMaxDepth = 32

var noopLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// TagFunc derives the tags of an operation from its path template and
// uppercase HTTP method.
type TagFunc func(t PathTemplate, method string) []string

// Config controls document generation. Start from [DefaultConfig]; Generate
// does this and applies its options on top.
type Config struct {
	// DefaultResponses maps a status code to the description of a response
	// added to every operation that does not declare that code.
	// Default: {"200": "Success"}. Nil disables injection.
	DefaultResponses map[string]string

	// Strict turns unsupported schema types and malformed paths into errors
	// instead of warnings. Default: false.
	Strict bool

	// MaxDepth limits schema nesting. Default: DefaultMaxDepth.
	MaxDepth int

	// TagStrategy derives operation tags. Default: TopSegmentTags.
	TagStrategy TagFunc

	// Logger receives debug output and warnings. Default: discards.
	Logger *slog.Logger
}

// DefaultConfig returns the configuration Generate starts from.
func DefaultConfig() Config {
	return Config{
		DefaultResponses: map[string]string{"200": "Success"},
		MaxDepth:         DefaultMaxDepth,
		TagStrategy:      TopSegmentTags,
		Logger:           noopLogger,
	}
}

// Option modifies the generation config.
type Option func(*Config)

// WithDefaultResponses replaces the default responses. Pass nil to disable
// default response injection.
func WithDefaultResponses(responses map[string]string) Option {
	return func(c *Config) {
		c.DefaultResponses = maps.Clone(responses)
	}
}

// WithStrict sets strict mode.
func WithStrict(strict bool) Option {
	return func(c *Config) {
		c.Strict = strict
	}
}

// WithMaxDepth sets the schema nesting limit.
func WithMaxDepth(depth int) Option {
	return func(c *Config) {
		c.MaxDepth = depth
	}
}

// WithTagStrategy sets the function deriving operation tags.
func WithTagStrategy(fn TagFunc) Option {
	return func(c *Config) {
		c.TagStrategy = fn
	}
}

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		if logger == nil {
			logger = noopLogger
		}
		c.Logger = logger
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.DefaultResponses, validation.By(statusCodeKeys)),
		validation.Field(&c.MaxDepth, validation.Required, validation.Min(1)),
		validation.Field(&c.TagStrategy, validation.NotNil),
		validation.Field(&c.Logger, validation.NotNil),
	)
}

func statusCodeKeys(value any) error {
	m, _ := value.(map[string]string)
	for _, code := range slices.Sorted(maps.Keys(m)) {
		if !validStatusCode(code) {
			return fmt.Errorf("invalid status code %q", code)
		}
	}
	return nil
}

// validStatusCode accepts "default", a three digit code from 100 to 599, or
// a class such as "4XX".
func validStatusCode(code string) bool {
	if code == "default" {
		return true
	}
	if len(code) != 3 || code[0] < '1' || code[0] > '5' {
		return false
	}
	if strings.EqualFold(code[1:], "XX") {
		return true
	}
	if !govalidator.IsInt(code) {
		return false
	}
	n, err := strconv.Atoi(code)
	return err == nil && n >= 100 && n <= 599
}

// TopSegmentTags tags an operation with the first literal segment of its
// path: "/api/users/{id}" is tagged "api". Paths made only of parameters get
// no tag.
func TopSegmentTags(t PathTemplate, _ string) []string {
	for _, seg := range strings.Split(t.String(), "/") {
		if seg == "" || strings.ContainsAny(seg, "{}") {
			continue
		}
		return []string{seg}
	}
	return nil
}
