// Package deps reads constructor and function parameter lists into
// structured dependency-invocation records.
package deps

import (
	"github.com/scyaay/angular/internal/element"
	"github.com/scyaay/angular/internal/errors"
)

// Dependency is one resolved parameter dependency of an invocation
type Dependency struct {
	// Token is the type or injection token the parameter resolves to
	Token    string
	Optional bool
}

// Invocation binds a constructor or function element to its ordered list of
// resolved parameter dependencies.
type Invocation[E comparable] struct {
	Element      E
	Dependencies []Dependency
}

// Equal reports whether two invocations bind the same element to the same
// dependency list
func (i *Invocation[E]) Equal(o *Invocation[E]) bool {
	if i == nil || o == nil {
		return i == o
	}
	if i.Element != o.Element || len(i.Dependencies) != len(o.Dependencies) {
		return false
	}
	for n, d := range i.Dependencies {
		if o.Dependencies[n] != d {
			return false
		}
	}
	return true
}

// Reader turns a constructor or function element into an invocation record.
// Implementations fail with a diagnostic error when a parameter list cannot
// be statically resolved; the resolver treats such failures as fatal.
type Reader interface {
	Constructor(class *element.ClassElement) (*Invocation[*element.ConstructorElement], error)
	Function(fn *element.FunctionElement) (*Invocation[*element.FunctionElement], error)
}

// StandardReader is the default Reader. It selects the primary constructor
// of a class and classifies plain positional, optional and field-formal
// parameters, honoring @Inject and @Optional parameter metadata.
type StandardReader struct{}

// NewStandardReader creates a new standard dependency reader
func NewStandardReader() *StandardReader {
	return &StandardReader{}
}

// Constructor builds the invocation record for the primary constructor of
// class. A class with only the implicit default constructor yields an
// invocation with no dependencies.
func (r *StandardReader) Constructor(class *element.ClassElement) (*Invocation[*element.ConstructorElement], error) {
	ctor := class.PrimaryConstructor()
	if ctor == nil {
		ctor = &element.ConstructorElement{}
	}
	dependencies, err := r.parameters(class.Name, ctor.Parameters)
	if err != nil {
		return nil, err
	}
	return &Invocation[*element.ConstructorElement]{Element: ctor, Dependencies: dependencies}, nil
}

// Function builds the invocation record for a top-level function
func (r *StandardReader) Function(fn *element.FunctionElement) (*Invocation[*element.FunctionElement], error) {
	dependencies, err := r.parameters(fn.Name, fn.Parameters)
	if err != nil {
		return nil, err
	}
	return &Invocation[*element.FunctionElement]{Element: fn, Dependencies: dependencies}, nil
}

func (r *StandardReader) parameters(owner string, params []element.ParameterElement) ([]Dependency, error) {
	if len(params) == 0 {
		return nil, nil
	}
	dependencies := make([]Dependency, 0, len(params))
	for i := range params {
		p := &params[i]
		if p.Kind == element.NamedParameter {
			return nil, errors.New(
				errors.CodeDependency,
				"named parameter %q of %q cannot be injected", p.Name, owner,
			).WithSuggestions("declare the parameter as positional, or supply the value with @Inject")
		}
		dependencies = append(dependencies, r.dependency(p))
	}
	return dependencies, nil
}

func (r *StandardReader) dependency(p *element.ParameterElement) Dependency {
	d := Dependency{
		Token:    p.Type,
		Optional: p.Kind == element.OptionalParameter,
	}
	if d.Token == "" {
		d.Token = "dynamic"
	}
	for i := range p.Metadata {
		switch meta := &p.Metadata[i]; meta.TypeName {
		case "Inject":
			if len(meta.Positional) > 0 {
				d.Token = meta.Positional[0]
			}
		case "Optional":
			d.Optional = true
		}
	}
	return d
}
