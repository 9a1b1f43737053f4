package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/gitlab-lint/gll/pkg/console"
	"github.com/gitlab-lint/gll/pkg/fileutil"
	"github.com/gitlab-lint/gll/pkg/lint"
	"github.com/gitlab-lint/gll/pkg/logger"
)

var watchLog = logger.New("cli:watch")

// watchAndRelint blocks until ctx is done, re-linting a file whenever it
// changes and printing the fresh verdict. The returned error reflects the
// most recent verdict of every watched file: nil when all pass, ErrLintFailed
// otherwise.
//
// Parent directories are watched rather than the files themselves, because
// editors that save via rename would otherwise detach the watch after the
// first write. In --find-all mode every directory under the roots is watched
// and any changed YAML file is linted, including newly created ones.
func watchAndRelint(ctx context.Context, linter *lint.Linter, opts lint.Options, files []string, initial []lint.Verdict, out io.Writer) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	tracked := make(map[string]bool, len(files))
	for _, f := range files {
		tracked[filepath.Clean(f)] = true
	}

	passing := make(map[string]bool, len(initial))
	for _, v := range initial {
		passing[filepath.Clean(v.Path)] = v.OK()
	}

	if opts.FindAll {
		for _, root := range opts.Paths {
			if err := addWatchTree(watcher, root); err != nil {
				return err
			}
		}
	} else {
		seen := make(map[string]bool)
		for _, f := range files {
			dir := filepath.Dir(filepath.Clean(f))
			if seen[dir] {
				continue
			}
			seen[dir] = true
			if err := watcher.Add(dir); err != nil {
				return fmt.Errorf("failed to watch %s: %w", dir, err)
			}
			watchLog.Printf("Watching directory: %s", dir)
		}
	}

	fmt.Fprintln(os.Stderr, console.FormatInfoMessage("Watching for changes, press Ctrl+C to stop"))

	for {
		select {
		case <-ctx.Done():
			for _, ok := range passing {
				if !ok {
					return ErrLintFailed
				}
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			path := filepath.Clean(event.Name)
			if opts.FindAll && event.Has(fsnotify.Create) && fileutil.DirExists(path) {
				// Subtrees created after startup must be watched too,
				// otherwise YAML files in them would be silently ignored.
				if err := addWatchTree(watcher, path); err != nil {
					fmt.Fprintln(os.Stderr, console.FormatErrorMessage(err.Error()))
				}
				continue
			}
			if !shouldRelint(opts, tracked, path) {
				continue
			}
			watchLog.Printf("Change detected: %s", path)
			v := linter.LintFile(ctx, path)
			passing[path] = v.OK()
			printVerdict(out, v)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintln(os.Stderr, console.FormatErrorMessage(fmt.Sprintf("watch error: %v", err)))
		}
	}
}

// addWatchTree registers dir and every directory below it with the watcher.
// Registering a directory twice is harmless, so no dedup is needed when a
// created subtree overlaps an already-watched one.
func addWatchTree(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		watchLog.Printf("Watching directory: %s", path)
		return nil
	})
}

// shouldRelint decides whether a filesystem event concerns a linted file. In
// --find-all mode any YAML file counts; otherwise only the explicitly listed
// files do.
func shouldRelint(opts lint.Options, tracked map[string]bool, path string) bool {
	if opts.FindAll {
		return fileutil.IsYAMLFile(filepath.Base(path)) && fileutil.FileExists(path)
	}
	return tracked[path]
}
