package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/scyaay/angular/internal/errors"
	"github.com/scyaay/angular/internal/reflector"
)

// Level represents the verbosity of reporter output
type Level int

const (
	LevelQuiet Level = iota
	LevelNormal
	LevelVerbose
)

// Reporter provides structured, user-friendly CLI output
type Reporter struct {
	level  Level
	out    io.Writer
	errOut io.Writer
}

// NewReporter creates a reporter writing to stdout/stderr
func NewReporter(level Level) *Reporter {
	return &Reporter{level: level, out: os.Stdout, errOut: os.Stderr}
}

// Section prints a bold section header
func (r *Reporter) Section(title string) {
	if r.level < LevelNormal {
		return
	}
	color.New(color.Bold).Fprintf(r.out, "%s\n", title)
}

// Info prints a normal-level message
func (r *Reporter) Info(format string, args ...interface{}) {
	if r.level < LevelNormal {
		return
	}
	fmt.Fprintf(r.out, format+"\n", args...)
}

// Verbose prints a message only in verbose mode
func (r *Reporter) Verbose(format string, args ...interface{}) {
	if r.level < LevelVerbose {
		return
	}
	fmt.Fprintf(r.out, format+"\n", args...)
}

// Success prints a green success marker with a message
func (r *Reporter) Success(format string, args ...interface{}) {
	if r.level < LevelNormal {
		return
	}
	color.New(color.FgGreen, color.Bold).Fprint(r.out, "✓ ")
	fmt.Fprintf(r.out, format+"\n", args...)
}

// Error reports a failure, with location and suggestions when the error is a
// resolver diagnostic
func (r *Reporter) Error(err error) {
	color.New(color.FgRed, color.Bold).Fprint(r.errOut, "✗ ")
	var diagnostic *errors.ResolveError
	if !stderrors.As(err, &diagnostic) {
		fmt.Fprintf(r.errOut, "%v\n", err)
		return
	}
	fmt.Fprintf(r.errOut, "%s: %s\n", diagnostic.Code, diagnostic.Message)
	if !diagnostic.Loc.IsEmpty() {
		fmt.Fprintf(r.errOut, "  at %s\n", diagnostic.Loc)
	}
	if diagnostic.Cause != nil {
		fmt.Fprintf(r.errOut, "  caused by: %v\n", diagnostic.Cause)
	}
	for _, suggestion := range diagnostic.Suggestions {
		fmt.Fprintf(r.errOut, "  hint: %s\n", suggestion)
	}
}

// PrintOutput renders one library's resolved output
func (r *Reporter) PrintOutput(library string, out *reflector.ReflectableOutput) {
	if r.level < LevelNormal {
		return
	}
	color.New(color.FgCyan, color.Bold).Fprintf(r.out, "%s\n", library)
	if out.IsEmpty() {
		fmt.Fprintln(r.out, "  nothing to register")
		return
	}
	for _, class := range out.RegisterClasses {
		fmt.Fprintf(r.out, "  class %s", class.Name)
		if class.Factory != nil {
			fmt.Fprintf(r.out, " (factory, %d deps)", len(class.Factory.Dependencies))
		}
		if class.RegisterComponentFactory {
			fmt.Fprint(r.out, " [component]")
		}
		if class.RegisterAnnotation != nil {
			fmt.Fprintf(r.out, " [@%s]", class.RegisterAnnotation.TypeName)
		}
		fmt.Fprintln(r.out)
	}
	for _, fn := range out.RegisterFunctions {
		fmt.Fprintf(r.out, "  func %s (%d deps)\n", fn.Element.Name, len(fn.Dependencies))
	}
	for _, url := range out.URLsNeedingInitReflector {
		fmt.Fprintf(r.out, "  link %s\n", url)
	}
}
