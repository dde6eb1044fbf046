package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scyaay/angular/internal/element"
	"github.com/scyaay/angular/internal/errors"
	"github.com/scyaay/angular/internal/reflector"
)

const widgetFixture = `
name: widgets
uri: package:example/widgets.dart
classes:
  - name: Widget
    annotations:
      - "@Component(selector: 'widget')"
      - "@RouteConfig([Routes.home])"
    constructors:
      - name: ""
        parameters:
          - {name: service, type: Service, kind: positional}
  - name: Plain
functions:
  - name: createService
    annotations: ["@Injectable()"]
    parameters:
      - {name: logger, type: Logger, kind: optional}
directives:
  - {kind: import, uri: "dart:async"}
  - {kind: import, uri: service.dart}
  - {kind: import, uri: heavy.dart, deferred: true}
  - {kind: export, uri: exported.dart}
`

func TestFixtureLoader_Parse(t *testing.T) {
	loader := NewFixtureLoader()

	lib, err := loader.Parse([]byte(widgetFixture))

	require.NoError(t, err)
	assert.Equal(t, "widgets", lib.Name)
	assert.Equal(t, "package:example/widgets.dart", lib.URI)

	require.Len(t, lib.Classes, 2)
	widget := lib.Classes[0]
	assert.Equal(t, "Widget", widget.Name)
	require.Len(t, widget.Metadata, 2)
	assert.Equal(t, "Component", widget.Metadata[0].TypeName)
	assert.Equal(t, "widget", widget.Metadata[0].Named["selector"])
	assert.Equal(t, "RouteConfig", widget.Metadata[1].TypeName)
	require.Len(t, widget.Constructors, 1)
	require.Len(t, widget.Constructors[0].Parameters, 1)
	assert.Equal(t, element.PositionalParameter, widget.Constructors[0].Parameters[0].Kind)

	require.Len(t, lib.Functions, 1)
	assert.Equal(t, "createService", lib.Functions[0].Name)
	require.Len(t, lib.Functions[0].Parameters, 1)
	assert.Equal(t, element.OptionalParameter, lib.Functions[0].Parameters[0].Kind)

	require.Len(t, lib.Directives, 4)
	assert.True(t, lib.Directives[2].Deferred)
	assert.Equal(t, element.ExportDirective, lib.Directives[3].Kind)
}

func TestFixtureLoader_ResolveRoundTrip(t *testing.T) {
	loader := NewFixtureLoader()
	lib, err := loader.Parse([]byte(widgetFixture))
	require.NoError(t, err)

	cfg := reflector.NewConfig()
	cfg.IsLibrary = func(uri string) bool { return uri == "service.template.dart" }
	resolver := reflector.NewResolver(cfg)

	output, err := resolver.Resolve(context.Background(), lib)

	require.NoError(t, err)
	assert.Equal(t, []string{"service.template.dart"}, output.URLsNeedingInitReflector)

	require.Len(t, output.RegisterClasses, 1)
	widget := output.RegisterClasses[0]
	assert.Equal(t, "Widget", widget.Name)
	assert.True(t, widget.RegisterComponentFactory)
	require.NotNil(t, widget.Factory)
	assert.Equal(t, "Service", widget.Factory.Dependencies[0].Token)
	require.NotNil(t, widget.RegisterAnnotation)
	assert.Equal(t, "RouteConfig", widget.RegisterAnnotation.TypeName)

	require.Len(t, output.RegisterFunctions, 1)
	assert.Equal(t, "createService", output.RegisterFunctions[0].Element.Name)
}

func TestFixtureLoader_LoadLibrary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "widgets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(widgetFixture), 0o644))

	lib, err := NewFixtureLoader().LoadLibrary(path)

	require.NoError(t, err)
	assert.Equal(t, "widgets", lib.Name)
}

func TestFixtureLoader_NameDefaultsToFileName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anonymous.yaml")
	require.NoError(t, os.WriteFile(path, []byte("classes: []\n"), 0o644))

	lib, err := NewFixtureLoader().LoadLibrary(path)

	require.NoError(t, err)
	assert.Equal(t, "anonymous", lib.Name)
}

func TestFixtureLoader_Errors(t *testing.T) {
	loader := NewFixtureLoader()

	tests := []struct {
		name string
		raw  string
	}{
		{
			name: "invalid yaml",
			raw:  "classes: [not valid",
		},
		{
			name: "unknown directive kind",
			raw:  "directives:\n  - {kind: include, uri: foo.dart}\n",
		},
		{
			name: "unknown parameter kind",
			raw:  "functions:\n  - name: f\n    parameters:\n      - {name: p, type: T, kind: variadic}\n",
		},
		{
			name: "malformed annotation",
			raw:  "classes:\n  - name: C\n    annotations: [\"Component()\"]\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loader.Parse([]byte(tt.raw))
			assert.Error(t, err)
		})
	}
}

func TestFixtureLoader_LoadMissingFile(t *testing.T) {
	_, err := NewFixtureLoader().LoadLibrary(filepath.Join(t.TempDir(), "absent.yaml"))

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeFixture))
}
