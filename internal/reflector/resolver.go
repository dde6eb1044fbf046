package reflector

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/scyaay/angular/internal/annotations"
	"github.com/scyaay/angular/internal/deps"
	"github.com/scyaay/angular/internal/element"
)

// Resolver produces the ReflectableOutput of one resolved library. It is
// stateless apart from its Config and safe for concurrent use.
type Resolver struct {
	cfg Config
}

// NewResolver creates a resolver from cfg, applying defaults for any unset
// collaborator field
func NewResolver(cfg Config) *Resolver {
	return &Resolver{cfg: cfg.withDefaults()}
}

// Resolve scans the library's declarations and directives and returns the
// registration and linking requirements of its companion file. Resolution is
// all-or-nothing: the first collaborator failure aborts the whole call.
func (r *Resolver) Resolve(ctx context.Context, lib *element.Library) (*ReflectableOutput, error) {
	var (
		urls      []string
		classes   []ReflectableClass
		functions []*deps.Invocation[*element.FunctionElement]
	)
	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		urls, err = r.linkedCompanions(ctx, lib.Directives)
		return err
	})
	group.Go(func() error {
		var err error
		if classes, err = r.registerClasses(lib.Classes); err != nil {
			return err
		}
		functions, err = r.registerFunctions(lib.Functions)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	return &ReflectableOutput{
		URLsNeedingInitReflector: urls,
		RegisterClasses:          classes,
		RegisterFunctions:        functions,
	}, nil
}

// registerClasses classifies every top-level class, in declaration order.
// Classes that need neither a factory nor a component-factory registration
// are dropped.
func (r *Resolver) registerClasses(classes []*element.ClassElement) ([]ReflectableClass, error) {
	var out []ReflectableClass
	for _, class := range classes {
		entry, ok, err := r.classifyClass(class)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, entry)
		}
	}
	return out, nil
}

func (r *Resolver) classifyClass(class *element.ClassElement) (ReflectableClass, bool, error) {
	needsFactory := annotations.Has(class, annotations.Injectable) ||
		(r.cfg.RecordComponentsAsInjectables && annotations.Has(class, annotations.Component)) ||
		(r.cfg.RecordDirectivesAsInjectables && annotations.Has(class, annotations.Directive)) ||
		(r.cfg.RecordPipesAsInjectables && annotations.Has(class, annotations.Pipe))

	var factory *deps.Invocation[*element.ConstructorElement]
	if needsFactory {
		var err error
		factory, err = r.cfg.Reader.Constructor(class)
		if err != nil {
			return ReflectableClass{}, false, err
		}
	}

	isComponent := annotations.Has(class, annotations.Component)
	if !needsFactory && !isComponent {
		return ReflectableClass{}, false, nil
	}

	var registerAnnotation *element.AnnotationValue
	if r.cfg.RecordRouterAnnotationsForComponents && isComponent {
		registerAnnotation = annotations.FirstOf(class, annotations.RouteConfig)
	}

	return ReflectableClass{
		Name:                     class.Name,
		Factory:                  factory,
		RegisterComponentFactory: isComponent,
		RegisterAnnotation:       registerAnnotation,
	}, true, nil
}

// registerFunctions collects every injectable top-level function, in
// declaration order
func (r *Resolver) registerFunctions(functions []*element.FunctionElement) ([]*deps.Invocation[*element.FunctionElement], error) {
	var out []*deps.Invocation[*element.FunctionElement]
	for _, fn := range functions {
		if !annotations.Has(fn, annotations.Injectable) {
			continue
		}
		invocation, err := r.cfg.Reader.Function(fn)
		if err != nil {
			return nil, err
		}
		out = append(out, invocation)
	}
	return out, nil
}
