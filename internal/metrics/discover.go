package metrics

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Discover expands the input arguments into concrete file paths. Plain
// paths pass through untouched; arguments containing glob metacharacters
// are expanded with doublestar so `out/**/*.json` works. A pattern that
// matches nothing is an error, since the caller asked for input that
// does not exist.
func Discover(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		if !strings.ContainsAny(arg, "*?[{") {
			paths = append(paths, arg)
			continue
		}
		matches, err := doublestar.FilepathGlob(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid input pattern %q: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no input files match %q", arg)
		}
		paths = append(paths, matches...)
	}
	return paths, nil
}

// Load discovers, reads, and merges every input argument into a single
// batch.
func Load(args []string) (*Batch, error) {
	paths, err := Discover(args)
	if err != nil {
		return nil, err
	}
	batches := make([]*Batch, 0, len(paths))
	for _, path := range paths {
		b, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		batches = append(batches, b)
	}
	return Merge(batches...), nil
}
