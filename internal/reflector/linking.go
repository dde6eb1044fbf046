package reflector

import (
	"context"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/scyaay/angular/internal/element"
)

// linkedCompanions evaluates every directive concurrently, then joins,
// deduplicates and sorts the companion URIs that must be linked. Only the
// final sorted set matters, so no completion order is preserved.
func (r *Resolver) linkedCompanions(ctx context.Context, directives []element.Directive) ([]string, error) {
	linked := make([]string, len(directives))
	group, ctx := errgroup.WithContext(ctx)
	for i, directive := range directives {
		i, directive := i, directive
		group.Go(func() error {
			ok, err := r.needsInitReflector(ctx, directive)
			if err != nil || !ok {
				return err
			}
			uri := directive.URI
			if !strings.HasSuffix(uri, r.cfg.OutputExtension) {
				if uri, err = CompanionURI(uri, r.cfg.OutputExtension); err != nil {
					return err
				}
			}
			linked[i] = uri
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(linked))
	var urls []string
	for _, uri := range linked {
		if uri == "" {
			continue
		}
		if _, dup := seen[uri]; dup {
			continue
		}
		seen[uri] = struct{}{}
		urls = append(urls, uri)
	}
	sort.Strings(urls)
	return urls, nil
}

// needsInitReflector decides whether the companion file behind one directive
// will exist and must be linked.
func (r *Resolver) needsInitReflector(ctx context.Context, d element.Directive) (bool, error) {
	// Only import, export and part directives reference another file.
	if d.URI == "" || d.Kind == element.PartOfDirective {
		return false, nil
	}
	// Linking a deferred import would force eager loading of the target.
	if d.IsImport() && d.Deferred {
		return false, nil
	}
	// A hand-written import of a companion file is an explicit opt-in.
	if d.IsImport() && strings.HasSuffix(d.URI, r.cfg.OutputExtension) {
		return true, nil
	}
	// Platform built-ins never have companions.
	if strings.HasPrefix(d.URI, PlatformPrefix) {
		return false, nil
	}

	companion, err := CompanionURI(d.URI, r.cfg.OutputExtension)
	if err != nil {
		return false, err
	}
	// The companion's existence is knowable two ways, depending on build
	// ordering: it is already an analyzed library, or the source file is a
	// registered build input whose companion is forthcoming.
	if r.cfg.IsLibrary(companion) {
		return true, nil
	}
	return r.cfg.HasInput(ctx, d.URI)
}
