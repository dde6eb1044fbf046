// Package annotations models the closed set of framework annotations the
// resolver classifies by, plus a parser for their textual form.
package annotations

import (
	"fmt"

	"github.com/scyaay/angular/internal/element"
)

// Kind represents one of the framework annotation types
type Kind int

const (
	Injectable Kind = iota
	Component
	Directive
	Pipe
	// RouteConfig is the deprecated router annotation, kept only for
	// backward compatibility and matched by raw type name.
	RouteConfig
)

// String returns the string representation of the annotation kind
func (k Kind) String() string {
	switch k {
	case Injectable:
		return "Injectable"
	case Component:
		return "Component"
	case Directive:
		return "Directive"
	case Pipe:
		return "Pipe"
	case RouteConfig:
		return "RouteConfig"
	default:
		return "unknown"
	}
}

// TypeName returns the declared type name matched against element metadata.
// For the fixed kind set it coincides with String.
func (k Kind) TypeName() string { return k.String() }

// ParseKind converts a string to a Kind
func ParseKind(s string) (Kind, error) {
	switch s {
	case "Injectable":
		return Injectable, nil
	case "Component":
		return Component, nil
	case "Directive":
		return Directive, nil
	case "Pipe":
		return Pipe, nil
	case "RouteConfig":
		return RouteConfig, nil
	default:
		return 0, fmt.Errorf("unknown annotation kind: %s", s)
	}
}

// FirstOf returns the first metadata entry of el whose declared type name
// matches the kind, in declaration order, or nil when the element does not
// carry it.
func FirstOf(el element.Annotated, k Kind) *element.AnnotationValue {
	name := k.TypeName()
	metadata := el.Annotations()
	for i := range metadata {
		if metadata[i].TypeName == name {
			return &metadata[i]
		}
	}
	return nil
}

// Has reports whether el carries an annotation of the given kind
func Has(el element.Annotated, k Kind) bool {
	return FirstOf(el, k) != nil
}
