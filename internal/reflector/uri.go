package reflector

import (
	"strings"

	"github.com/scyaay/angular/internal/errors"
)

// CompanionURI computes the companion-file URI for a source URI by replacing
// everything after the last '.' with ext (which carries its own leading
// '.'). A URI with no extension separator is rejected rather than guessed
// at: the rewrite is only defined for single-extension file names.
func CompanionURI(uri, ext string) (string, error) {
	idx := strings.LastIndexByte(uri, '.')
	if idx <= 0 {
		return "", errors.New(errors.CodeMalformedURI, "source URI %q has no file extension to replace", uri).
			WithSuggestions("companion URIs are derived by extension rewriting; reference a file with an extension")
	}
	return uri[:idx] + ext, nil
}
