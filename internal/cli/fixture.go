package cli

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/scyaay/angular/internal/annotations"
	"github.com/scyaay/angular/internal/element"
	"github.com/scyaay/angular/internal/errors"
)

// libraryFixture is the YAML form of one resolved library. Annotations are
// written in their textual source form and parsed into metadata values.
type libraryFixture struct {
	Name       string             `yaml:"name"`
	URI        string             `yaml:"uri"`
	Classes    []classFixture     `yaml:"classes"`
	Functions  []functionFixture  `yaml:"functions"`
	Directives []directiveFixture `yaml:"directives"`
}

type classFixture struct {
	Name         string               `yaml:"name"`
	Annotations  []string             `yaml:"annotations"`
	Constructors []constructorFixture `yaml:"constructors"`
}

type constructorFixture struct {
	Name       string             `yaml:"name"`
	Parameters []parameterFixture `yaml:"parameters"`
}

type functionFixture struct {
	Name        string             `yaml:"name"`
	Annotations []string           `yaml:"annotations"`
	Parameters  []parameterFixture `yaml:"parameters"`
}

type parameterFixture struct {
	Name        string   `yaml:"name"`
	Type        string   `yaml:"type"`
	Kind        string   `yaml:"kind"`
	Annotations []string `yaml:"annotations"`
}

type directiveFixture struct {
	Kind     string `yaml:"kind"`
	URI      string `yaml:"uri"`
	Deferred bool   `yaml:"deferred"`
}

// FixtureLoader reads library fixtures from disk
type FixtureLoader struct {
	parser *annotations.SourceParser
}

// NewFixtureLoader creates a new fixture loader
func NewFixtureLoader() *FixtureLoader {
	return &FixtureLoader{parser: annotations.NewSourceParser()}
}

// LoadLibrary reads and converts one library fixture file
func (l *FixtureLoader) LoadLibrary(path string) (*element.Library, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.CodeFixture, err, "failed to read library fixture %q", path)
	}
	lib, err := l.Parse(raw)
	if err != nil {
		return nil, errors.Wrap(errors.CodeFixture, err, "invalid library fixture %q", path)
	}
	if lib.Name == "" {
		lib.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return lib, nil
}

// Parse converts raw fixture YAML into a resolved library
func (l *FixtureLoader) Parse(raw []byte) (*element.Library, error) {
	var fixture libraryFixture
	if err := yaml.Unmarshal(raw, &fixture); err != nil {
		return nil, err
	}

	lib := &element.Library{Name: fixture.Name, URI: fixture.URI}
	for _, class := range fixture.Classes {
		converted, err := l.class(class)
		if err != nil {
			return nil, err
		}
		lib.Classes = append(lib.Classes, converted)
	}
	for _, fn := range fixture.Functions {
		converted, err := l.function(fn)
		if err != nil {
			return nil, err
		}
		lib.Functions = append(lib.Functions, converted)
	}
	for _, directive := range fixture.Directives {
		converted, err := l.directive(directive)
		if err != nil {
			return nil, err
		}
		lib.Directives = append(lib.Directives, converted)
	}
	return lib, nil
}

func (l *FixtureLoader) class(fixture classFixture) (*element.ClassElement, error) {
	metadata, err := l.parser.ParseAll(fixture.Annotations)
	if err != nil {
		return nil, err
	}
	class := &element.ClassElement{Name: fixture.Name, Metadata: metadata}
	for _, ctor := range fixture.Constructors {
		params, err := l.parameters(ctor.Parameters)
		if err != nil {
			return nil, err
		}
		class.Constructors = append(class.Constructors, &element.ConstructorElement{
			Name:       ctor.Name,
			Parameters: params,
		})
	}
	return class, nil
}

func (l *FixtureLoader) function(fixture functionFixture) (*element.FunctionElement, error) {
	metadata, err := l.parser.ParseAll(fixture.Annotations)
	if err != nil {
		return nil, err
	}
	params, err := l.parameters(fixture.Parameters)
	if err != nil {
		return nil, err
	}
	return &element.FunctionElement{
		Name:       fixture.Name,
		Parameters: params,
		Metadata:   metadata,
	}, nil
}

func (l *FixtureLoader) parameters(fixtures []parameterFixture) ([]element.ParameterElement, error) {
	if len(fixtures) == 0 {
		return nil, nil
	}
	params := make([]element.ParameterElement, 0, len(fixtures))
	for _, fixture := range fixtures {
		kind, err := parameterKind(fixture.Kind)
		if err != nil {
			return nil, err
		}
		metadata, err := l.parser.ParseAll(fixture.Annotations)
		if err != nil {
			return nil, err
		}
		params = append(params, element.ParameterElement{
			Name:     fixture.Name,
			Type:     fixture.Type,
			Kind:     kind,
			Metadata: metadata,
		})
	}
	return params, nil
}

func (l *FixtureLoader) directive(fixture directiveFixture) (element.Directive, error) {
	kind, err := directiveKind(fixture.Kind)
	if err != nil {
		return element.Directive{}, err
	}
	return element.Directive{Kind: kind, URI: fixture.URI, Deferred: fixture.Deferred}, nil
}

func parameterKind(s string) (element.ParameterKind, error) {
	switch s {
	case "", "positional":
		return element.PositionalParameter, nil
	case "optional":
		return element.OptionalParameter, nil
	case "named":
		return element.NamedParameter, nil
	case "field":
		return element.FieldFormalParameter, nil
	default:
		return 0, errors.New(errors.CodeFixture, "unknown parameter kind %q", s)
	}
}

func directiveKind(s string) (element.DirectiveKind, error) {
	switch s {
	case "import":
		return element.ImportDirective, nil
	case "export":
		return element.ExportDirective, nil
	case "part":
		return element.PartDirective, nil
	case "part of":
		return element.PartOfDirective, nil
	default:
		return 0, errors.New(errors.CodeFixture, "unknown directive kind %q", s)
	}
}
