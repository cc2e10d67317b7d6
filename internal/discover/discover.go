// internal/discover/discover.go
package discover

import (
	"fmt"

	"github.com/spf13/afero"
)

// ArticlePattern selects every article page of the site.
const ArticlePattern = "src/pages/articles/*.astro"

// Discover returns the paths on fsys matching pattern, in the order the
// glob yields them. No match is not an error.
func Discover(fsys afero.Fs, pattern string) ([]string, error) {
	matches, err := afero.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("matching %q: %w", pattern, err)
	}
	return matches, nil
}
