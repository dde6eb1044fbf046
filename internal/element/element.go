package element

// DirectiveKind identifies the kind of a library directive.
type DirectiveKind int

const (
	ImportDirective DirectiveKind = iota
	ExportDirective
	PartDirective
	PartOfDirective
)

// String returns the string representation of the directive kind
func (k DirectiveKind) String() string {
	switch k {
	case ImportDirective:
		return "import"
	case ExportDirective:
		return "export"
	case PartDirective:
		return "part"
	case PartOfDirective:
		return "part of"
	default:
		return "unknown"
	}
}

// Directive is one import, export or part directive of a library.
// PartOfDirective entries carry a library name instead of a URI and
// leave URI empty.
type Directive struct {
	Kind     DirectiveKind
	URI      string
	Deferred bool // only meaningful for imports
}

// IsImport reports whether the directive is an import
func (d Directive) IsImport() bool { return d.Kind == ImportDirective }

// IsExport reports whether the directive is an export
func (d Directive) IsExport() bool { return d.Kind == ExportDirective }

// IsPart reports whether the directive is a part
func (d Directive) IsPart() bool { return d.Kind == PartDirective }

// ParameterKind identifies how a constructor or function parameter is declared.
type ParameterKind int

const (
	PositionalParameter ParameterKind = iota
	OptionalParameter
	NamedParameter
	FieldFormalParameter
)

// String returns the string representation of the parameter kind
func (k ParameterKind) String() string {
	switch k {
	case PositionalParameter:
		return "positional"
	case OptionalParameter:
		return "optional"
	case NamedParameter:
		return "named"
	case FieldFormalParameter:
		return "field"
	default:
		return "unknown"
	}
}

// AnnotationValue is one resolved metadata entry attached to a declaration:
// the declared type of the constant plus its raw argument values. It is a
// plain value; the resolver never evaluates arguments, it only records them.
type AnnotationValue struct {
	TypeName   string
	Positional []string
	Named      map[string]string
}

// Equal reports whether two annotation values have identical content
func (a *AnnotationValue) Equal(b *AnnotationValue) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.TypeName != b.TypeName || len(a.Positional) != len(b.Positional) || len(a.Named) != len(b.Named) {
		return false
	}
	for i, v := range a.Positional {
		if b.Positional[i] != v {
			return false
		}
	}
	for k, v := range a.Named {
		if bv, ok := b.Named[k]; !ok || bv != v {
			return false
		}
	}
	return true
}

// Annotated is any element that carries metadata in declaration order.
type Annotated interface {
	Annotations() []AnnotationValue
}

// ParameterElement is one declared parameter of a constructor or function
type ParameterElement struct {
	Name     string
	Type     string
	Kind     ParameterKind
	Metadata []AnnotationValue
}

// Annotations returns the parameter metadata in declaration order
func (p *ParameterElement) Annotations() []AnnotationValue { return p.Metadata }

// ConstructorElement is one declared constructor. Name is empty for the
// unnamed constructor.
type ConstructorElement struct {
	Name       string
	Parameters []ParameterElement
}

// ClassElement is one top-level class declaration of a library
type ClassElement struct {
	Name         string
	Constructors []*ConstructorElement
	Metadata     []AnnotationValue
}

// Annotations returns the class metadata in declaration order
func (c *ClassElement) Annotations() []AnnotationValue { return c.Metadata }

// PrimaryConstructor returns the constructor a factory registration would
// invoke: the unnamed constructor when one is declared, otherwise the first
// declared constructor, otherwise nil (the class has only the implicit
// default constructor).
func (c *ClassElement) PrimaryConstructor() *ConstructorElement {
	for _, ctor := range c.Constructors {
		if ctor.Name == "" {
			return ctor
		}
	}
	if len(c.Constructors) > 0 {
		return c.Constructors[0]
	}
	return nil
}

// FunctionElement is one top-level function declaration of a library
type FunctionElement struct {
	Name       string
	Parameters []ParameterElement
	Metadata   []AnnotationValue
}

// Annotations returns the function metadata in declaration order
func (f *FunctionElement) Annotations() []AnnotationValue { return f.Metadata }

// Library is the resolved top-level unit of one source file: its class and
// function declarations and its directives, each in declaration order.
type Library struct {
	Name       string
	URI        string
	Classes    []*ClassElement
	Functions  []*FunctionElement
	Directives []Directive
}
