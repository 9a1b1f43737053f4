// Package fileutil provides utility functions for file paths and YAML file
// discovery.
package fileutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gitlab-lint/gll/pkg/constants"
	"github.com/gitlab-lint/gll/pkg/logger"
)

var log = logger.New("fileutil:fileutil")

// FileExists checks if a path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists checks if a path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsYAMLFile reports whether the file name carries a YAML extension
// (.yml or .yaml). Leading dots are fine: ".gitlab-ci.yml" matches.
func IsYAMLFile(name string) bool {
	for _, ext := range constants.YAMLExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// CollectYAMLFiles walks root recursively and returns the paths of all YAML
// files in lexical walk order. Directories themselves and non-YAML files are
// excluded.
//
// Directory symlinks are not followed (filepath.WalkDir semantics), so
// symlink cycles cannot occur; symlinked regular files that match the
// extension filter are included.
func CollectYAMLFiles(root string) ([]string, error) {
	log.Printf("Walking directory: root=%s", root)

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if IsYAMLFile(d.Name()) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	log.Printf("Walk complete: root=%s, files=%d", root, len(files))
	return files, nil
}
