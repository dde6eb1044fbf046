package reflector

import (
	"fmt"
	"strings"

	"github.com/scyaay/angular/internal/deps"
	"github.com/scyaay/angular/internal/element"
)

// ReflectableClass is one class requiring registration in the generated
// companion file.
type ReflectableClass struct {
	// Name is the class identifier
	Name string

	// Factory is present iff the class needs a constructible factory
	// registered.
	Factory *deps.Invocation[*element.ConstructorElement]

	// RegisterComponentFactory is true iff the class is a UI component
	// requiring a view-factory registration.
	RegisterComponentFactory bool

	// RegisterAnnotation carries the legacy RouteConfig annotation when
	// capture is enabled and the class is a component carrying one.
	RegisterAnnotation *element.AnnotationValue
}

// Equal reports whether two entries are structurally identical
func (c ReflectableClass) Equal(o ReflectableClass) bool {
	return c.Name == o.Name &&
		c.RegisterComponentFactory == o.RegisterComponentFactory &&
		c.Factory.Equal(o.Factory) &&
		c.RegisterAnnotation.Equal(o.RegisterAnnotation)
}

// ReflectableOutput is the immutable result of resolving one library.
type ReflectableOutput struct {
	// URLsNeedingInitReflector lists the companion-file URIs this library's
	// companion must import and initialize, deduplicated and sorted
	// lexicographically.
	URLsNeedingInitReflector []string

	// RegisterClasses lists the classes needing registration, in
	// declaration order.
	RegisterClasses []ReflectableClass

	// RegisterFunctions lists the injectable top-level functions, in
	// declaration order.
	RegisterFunctions []*deps.Invocation[*element.FunctionElement]
}

// IsEmpty reports whether the output records nothing at all
func (o *ReflectableOutput) IsEmpty() bool {
	return len(o.URLsNeedingInitReflector) == 0 &&
		len(o.RegisterClasses) == 0 &&
		len(o.RegisterFunctions) == 0
}

// Equal reports whether two outputs are structurally identical, order
// sensitive for all three lists
func (o *ReflectableOutput) Equal(other *ReflectableOutput) bool {
	if o == nil || other == nil {
		return o == other
	}
	if len(o.URLsNeedingInitReflector) != len(other.URLsNeedingInitReflector) ||
		len(o.RegisterClasses) != len(other.RegisterClasses) ||
		len(o.RegisterFunctions) != len(other.RegisterFunctions) {
		return false
	}
	for i, url := range o.URLsNeedingInitReflector {
		if other.URLsNeedingInitReflector[i] != url {
			return false
		}
	}
	for i, class := range o.RegisterClasses {
		if !class.Equal(other.RegisterClasses[i]) {
			return false
		}
	}
	for i, fn := range o.RegisterFunctions {
		if !fn.Equal(other.RegisterFunctions[i]) {
			return false
		}
	}
	return true
}

// String returns a compact single-line summary for diagnostics
func (o *ReflectableOutput) String() string {
	classes := make([]string, len(o.RegisterClasses))
	for i, c := range o.RegisterClasses {
		classes[i] = c.Name
	}
	functions := make([]string, len(o.RegisterFunctions))
	for i, f := range o.RegisterFunctions {
		functions[i] = f.Element.Name
	}
	return fmt.Sprintf(
		"ReflectableOutput{urls: [%s], classes: [%s], functions: [%s]}",
		strings.Join(o.URLsNeedingInitReflector, ", "),
		strings.Join(classes, ", "),
		strings.Join(functions, ", "),
	)
}
