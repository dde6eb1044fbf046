package annotations

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/scyaay/angular/internal/element"
)

// SourceParser parses the textual annotation form used by library fixtures,
// e.g. @Component(selector: 'app', directives: [NgFor]) or @Injectable().
type SourceParser struct {
	parser *participle.Parser[annotationExpr]
}

// annotationExpr represents the root of an annotation expression
type annotationExpr struct {
	Name string        `parser:"'@' @Ident"`
	Args *argumentList `parser:"('(' @@? ')')?"`
}

// argumentList represents a non-empty comma-separated argument list
type argumentList struct {
	Args []*annotationArg `parser:"@@ (',' @@)*"`
}

// annotationArg represents one positional or named argument
type annotationArg struct {
	Name  string           `parser:"(@Ident ':')?"`
	Value *annotationValue `parser:"@@"`
}

// annotationValue represents one argument value
type annotationValue struct {
	Str   *string            `parser:"@String"`
	Num   *string            `parser:"| @Number"`
	Ident *string            `parser:"| @Ident"`
	List  []*annotationValue `parser:"| '[' (@@ (',' @@)*)? ']'"`
}

// NewSourceParser creates a new annotation source parser
func NewSourceParser() *SourceParser {
	lex := lexer.MustSimple([]lexer.SimpleRule{
		{Name: "String", Pattern: `"(\\.|[^"])*"|'(\\.|[^'])*'`},
		{Name: "Number", Pattern: `[-+]?[0-9]+(\.[0-9]+)?`},
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_.]*`},
		{Name: "Punct", Pattern: `[@(),:\[\]]`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	parser := participle.MustBuild[annotationExpr](
		participle.Lexer(lex),
		participle.Elide("Whitespace"),
		participle.UseLookahead(2),
	)

	return &SourceParser{parser: parser}
}

// Parse parses a single annotation expression into an AnnotationValue
func (p *SourceParser) Parse(src string) (*element.AnnotationValue, error) {
	expr, err := p.parser.ParseString("", strings.TrimSpace(src))
	if err != nil {
		return nil, fmt.Errorf("failed to parse annotation %q: %w", src, err)
	}

	value := &element.AnnotationValue{TypeName: expr.Name}
	if expr.Args == nil {
		return value, nil
	}
	for _, arg := range expr.Args.Args {
		rendered := renderValue(arg.Value)
		if arg.Name == "" {
			value.Positional = append(value.Positional, rendered)
			continue
		}
		if value.Named == nil {
			value.Named = make(map[string]string)
		}
		if _, dup := value.Named[arg.Name]; dup {
			return nil, fmt.Errorf("duplicate named argument %q in annotation %q", arg.Name, src)
		}
		value.Named[arg.Name] = rendered
	}
	return value, nil
}

// ParseAll parses a list of annotation expressions, preserving order
func (p *SourceParser) ParseAll(srcs []string) ([]element.AnnotationValue, error) {
	if len(srcs) == 0 {
		return nil, nil
	}
	values := make([]element.AnnotationValue, 0, len(srcs))
	for _, src := range srcs {
		value, err := p.Parse(src)
		if err != nil {
			return nil, err
		}
		values = append(values, *value)
	}
	return values, nil
}

// renderValue converts a parsed value back to its canonical raw form
func renderValue(v *annotationValue) string {
	switch {
	case v == nil:
		return ""
	case v.Str != nil:
		return unquote(*v.Str)
	case v.Num != nil:
		return *v.Num
	case v.Ident != nil:
		return *v.Ident
	default:
		parts := make([]string, len(v.List))
		for i, item := range v.List {
			parts[i] = renderValue(item)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
}

var unescaper = strings.NewReplacer(`\"`, `"`, `\'`, `'`, `\\`, `\`)

// unquote strips the surrounding quotes from a string token and resolves
// escape sequences
func unquote(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			s = s[1 : len(s)-1]
		}
	}
	return unescaper.Replace(s)
}
