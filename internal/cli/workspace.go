// Package cli hosts the pieces the ngreflect command wires around the
// resolver core: a build-workspace scanner backing the two build-system
// callbacks, a YAML library fixture loader and a diagnostic reporter.
package cli

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/scyaay/angular/internal/errors"
	"github.com/scyaay/angular/internal/reflector"
)

// sourcePattern matches every source file under a workspace root
const sourcePattern = "**/*.dart"

// pubspec is the subset of the package manifest the scanner needs
type pubspec struct {
	Name string `yaml:"name"`
}

// Workspace answers the resolver's HasInput and IsLibrary callbacks from a
// one-time scan of a package directory tree. Files already carrying the
// output extension count as analyzed libraries; every other source file
// counts as a build input whose companion is forthcoming.
type Workspace struct {
	root      string
	name      string
	ext       string
	inputs    map[string]struct{}
	libraries map[string]struct{}
}

// OpenWorkspace scans the package rooted at root. The package name is read
// from pubspec.yaml when present, falling back to the directory name; ext
// defaults to reflector.DefaultOutputExtension.
func OpenWorkspace(root, ext string) (*Workspace, error) {
	if ext == "" {
		ext = reflector.DefaultOutputExtension
	}
	w := &Workspace{
		root:      root,
		ext:       ext,
		inputs:    make(map[string]struct{}),
		libraries: make(map[string]struct{}),
	}

	name, err := packageName(root)
	if err != nil {
		return nil, err
	}
	w.name = name

	matches, err := doublestar.Glob(os.DirFS(root), sourcePattern)
	if err != nil {
		return nil, errors.Wrap(errors.CodeWorkspace, err, "failed to scan workspace %q", root)
	}
	for _, match := range matches {
		w.record(match)
	}
	return w, nil
}

// Name returns the workspace's package name
func (w *Workspace) Name() string { return w.name }

// HasInput reports whether the workspace holds a source file for uri. It
// implements reflector.HasInputFunc.
func (w *Workspace) HasInput(ctx context.Context, uri string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	_, ok := w.inputs[uri]
	return ok, nil
}

// IsLibrary reports whether uri is an already-analyzed companion in the
// workspace. It implements reflector.IsLibraryFunc.
func (w *Workspace) IsLibrary(uri string) bool {
	_, ok := w.libraries[uri]
	return ok
}

// record registers one scanned file under both its relative URI and, for
// files under lib/, its package: URI.
func (w *Workspace) record(rel string) {
	uris := []string{rel}
	if rest, ok := strings.CutPrefix(rel, "lib/"); ok {
		uris = append(uris, "package:"+path.Join(w.name, rest))
	}
	for _, uri := range uris {
		if strings.HasSuffix(uri, w.ext) {
			w.libraries[uri] = struct{}{}
		} else {
			w.inputs[uri] = struct{}{}
		}
	}
}

// packageName reads the package name from the manifest, if one exists
func packageName(root string) (string, error) {
	raw, err := os.ReadFile(filepath.Join(root, "pubspec.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return filepath.Base(root), nil
		}
		return "", errors.Wrap(errors.CodeWorkspace, err, "failed to read package manifest in %q", root)
	}
	var manifest pubspec
	if err := yaml.Unmarshal(raw, &manifest); err != nil {
		return "", errors.Wrap(errors.CodeWorkspace, err, "failed to parse package manifest in %q", root)
	}
	if manifest.Name == "" {
		return filepath.Base(root), nil
	}
	return manifest.Name, nil
}
