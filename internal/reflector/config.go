// Package reflector decides which declarations of a resolved library need a
// runtime-registration entry in its generated companion file, and which other
// companion files that file must import and initialize.
package reflector

import (
	"context"

	"github.com/scyaay/angular/internal/deps"
)

const (
	// DefaultOutputExtension is the suffix appended to a source URI's base
	// name to compute its companion-file URI.
	DefaultOutputExtension = ".template.dart"

	// PlatformPrefix marks URIs of platform built-in libraries, which never
	// have companion files.
	PlatformPrefix = "dart:"
)

// HasInputFunc reports whether the build has a pending or completed
// compilation unit for a source URI. It may be backed by an asynchronous
// build-system query, hence the context.
type HasInputFunc func(ctx context.Context, uri string) (bool, error)

// IsLibraryFunc reports whether a URI is already a resolved library in the
// current analysis context.
type IsLibraryFunc func(uri string) bool

// Config is the construction-time configuration of a Resolver. It is fixed
// for the lifetime of one build and never mutated by the resolver.
type Config struct {
	// Reader turns constructor and function elements into invocation
	// records. Defaults to deps.NewStandardReader.
	Reader deps.Reader

	// HasInput and IsLibrary are the two build-system callbacks used to
	// decide whether a companion file will exist. Both default to
	// always-false, which disables cross-library linking.
	HasInput  HasInputFunc
	IsLibrary IsLibraryFunc

	// OutputExtension is the companion-file suffix. Defaults to
	// DefaultOutputExtension.
	OutputExtension string

	// The three flags below cause annotated-but-not-explicitly-injectable
	// declarations to be registered with a factory anyway.
	RecordComponentsAsInjectables bool
	RecordDirectivesAsInjectables bool
	RecordPipesAsInjectables      bool

	// RecordRouterAnnotationsForComponents captures the deprecated
	// RouteConfig annotation on component classes.
	RecordRouterAnnotationsForComponents bool
}

// NewConfig returns the maximally conservative configuration: components,
// directives and pipes are all treated as registrable and legacy router
// annotations are captured.
func NewConfig() Config {
	return Config{
		Reader:                               deps.NewStandardReader(),
		OutputExtension:                      DefaultOutputExtension,
		RecordComponentsAsInjectables:        true,
		RecordDirectivesAsInjectables:        true,
		RecordPipesAsInjectables:             true,
		RecordRouterAnnotationsForComponents: true,
	}
}

// withDefaults fills the zero-valued collaborator fields of a Config
func (c Config) withDefaults() Config {
	if c.Reader == nil {
		c.Reader = deps.NewStandardReader()
	}
	if c.OutputExtension == "" {
		c.OutputExtension = DefaultOutputExtension
	}
	if c.HasInput == nil {
		c.HasInput = func(context.Context, string) (bool, error) { return false, nil }
	}
	if c.IsLibrary == nil {
		c.IsLibrary = func(string) bool { return false }
	}
	return c
}
