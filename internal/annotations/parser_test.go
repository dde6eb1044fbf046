package annotations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scyaay/angular/internal/element"
)

func TestSourceParser_Parse(t *testing.T) {
	parser := NewSourceParser()

	tests := []struct {
		name        string
		src         string
		expected    element.AnnotationValue
		expectError bool
	}{
		{
			name:     "bare annotation",
			src:      "@deprecated",
			expected: element.AnnotationValue{TypeName: "deprecated"},
		},
		{
			name:     "empty argument list",
			src:      "@Injectable()",
			expected: element.AnnotationValue{TypeName: "Injectable"},
		},
		{
			name: "named string arguments",
			src:  `@Component(selector: 'my-app', template: "<div></div>")`,
			expected: element.AnnotationValue{
				TypeName: "Component",
				Named: map[string]string{
					"selector": "my-app",
					"template": "<div></div>",
				},
			},
		},
		{
			name: "positional argument",
			src:  "@Pipe('date')",
			expected: element.AnnotationValue{
				TypeName:   "Pipe",
				Positional: []string{"date"},
			},
		},
		{
			name: "mixed positional and named",
			src:  "@Pipe('date', pure: false)",
			expected: element.AnnotationValue{
				TypeName:   "Pipe",
				Positional: []string{"date"},
				Named:      map[string]string{"pure": "false"},
			},
		},
		{
			name: "list argument",
			src:  "@Component(selector: 'app', directives: [NgFor, NgIf])",
			expected: element.AnnotationValue{
				TypeName: "Component",
				Named: map[string]string{
					"selector":   "app",
					"directives": "[NgFor, NgIf]",
				},
			},
		},
		{
			name: "empty list argument",
			src:  "@Component(directives: [])",
			expected: element.AnnotationValue{
				TypeName: "Component",
				Named:    map[string]string{"directives": "[]"},
			},
		},
		{
			name: "number argument",
			src:  "@Retry(3)",
			expected: element.AnnotationValue{
				TypeName:   "Retry",
				Positional: []string{"3"},
			},
		},
		{
			name: "dotted identifier argument",
			src:  "@Inject(Tokens.baseUrl)",
			expected: element.AnnotationValue{
				TypeName:   "Inject",
				Positional: []string{"Tokens.baseUrl"},
			},
		},
		{
			name: "escaped quote in string",
			src:  `@Component(template: 'it\'s fine')`,
			expected: element.AnnotationValue{
				TypeName: "Component",
				Named:    map[string]string{"template": "it's fine"},
			},
		},
		{
			name:        "missing at sign",
			src:         "Component()",
			expectError: true,
		},
		{
			name:        "unterminated argument list",
			src:         "@Component(selector: 'app'",
			expectError: true,
		},
		{
			name:        "duplicate named argument",
			src:         "@Component(selector: 'a', selector: 'b')",
			expectError: true,
		},
		{
			name:        "empty input",
			src:         "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.src)
			if tt.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "parsed %+v", got)
		})
	}
}

func TestSourceParser_ParseAllPreservesOrder(t *testing.T) {
	parser := NewSourceParser()

	values, err := parser.ParseAll([]string{"@Component(selector: 'a')", "@RouteConfig('/')"})

	require.NoError(t, err)
	require.Len(t, values, 2)
	assert.Equal(t, "Component", values[0].TypeName)
	assert.Equal(t, "RouteConfig", values[1].TypeName)
}

func TestSourceParser_ParseAllFailsOnFirstError(t *testing.T) {
	parser := NewSourceParser()

	values, err := parser.ParseAll([]string{"@Component()", "not an annotation"})

	assert.Nil(t, values)
	require.Error(t, err)
}
