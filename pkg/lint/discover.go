package lint

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/gitlab-lint/gll/pkg/fileutil"
	"github.com/gitlab-lint/gll/pkg/logger"
)

var discoverLog = logger.New("lint:discover")

// ErrNoFiles is returned by Discover when a --find-all walk matches nothing.
var ErrNoFiles = errors.New("no YAML files found")

// Discover resolves Options.Paths into the final ordered list of files to
// lint.
//
// Without FindAll the paths pass through verbatim and unchecked; a missing
// file is reported later as a read-error verdict, not here. With FindAll each
// path is walked recursively and every *.yml / *.yaml file joins the result,
// in input-path order and lexical walk order within a root.
func Discover(opts Options) ([]string, error) {
	if !opts.FindAll {
		discoverLog.Printf("Using paths verbatim: count=%d", len(opts.Paths))
		return slices.Clone(opts.Paths), nil
	}

	var files []string
	for _, root := range opts.Paths {
		found, err := fileutil.CollectYAMLFiles(root)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	discoverLog.Printf("Discovery complete: roots=%d, files=%d", len(opts.Paths), len(files))

	if len(files) == 0 {
		return nil, fmt.Errorf("%w under %s", ErrNoFiles, strings.Join(opts.Paths, ", "))
	}
	return files, nil
}
