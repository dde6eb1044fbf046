package element

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnnotationValue_Equal(t *testing.T) {
	a := &AnnotationValue{TypeName: "Component", Positional: []string{"x"}, Named: map[string]string{"selector": "app"}}
	b := &AnnotationValue{TypeName: "Component", Positional: []string{"x"}, Named: map[string]string{"selector": "app"}}
	c := &AnnotationValue{TypeName: "Component", Positional: []string{"x"}, Named: map[string]string{"selector": "other"}}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))

	var nilValue *AnnotationValue
	assert.True(t, nilValue.Equal(nil))
}

func TestClassElement_PrimaryConstructor(t *testing.T) {
	unnamed := &ConstructorElement{}
	named := &ConstructorElement{Name: "forTesting"}

	tests := []struct {
		name         string
		constructors []*ConstructorElement
		want         *ConstructorElement
	}{
		{name: "no declared constructor", constructors: nil, want: nil},
		{name: "unnamed preferred", constructors: []*ConstructorElement{named, unnamed}, want: unnamed},
		{name: "first named as fallback", constructors: []*ConstructorElement{named}, want: named},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			class := &ClassElement{Name: "Subject", Constructors: tt.constructors}
			got := class.PrimaryConstructor()
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			assert.Same(t, tt.want, got)
		})
	}
}
