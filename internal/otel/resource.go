package otel

import (
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"

	"github.com/ryndalv/skein/version"
)

// newResource creates a standalone resource instead of merging with
// resource.Default() to avoid schema URL conflicts with the semconv
// version used by the SDK defaults.
func newResource() *resource.Resource {
	return resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName("skein"),
		semconv.ServiceVersion(version.Version),
	)
}
