package main

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// fileWatcher reports writes to a fixed set of files. It watches their
// directories so editors that replace a file on save are seen too.
type fileWatcher struct {
	w       *fsnotify.Watcher
	targets map[string]string // cleaned absolute path -> path as given
	log     *zap.Logger
}

func newFileWatcher(paths []string, log *zap.Logger) (*fileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, &CLIError{Type: "io", Message: "cannot watch files", Err: err}
	}

	fw := &fileWatcher{w: w, targets: make(map[string]string), log: log}
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			_ = w.Close()
			return nil, &CLIError{Type: "io", Message: "cannot watch files", Err: errors.Wrapf(err, "resolving %s", p)}
		}
		fw.targets[abs] = p

		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, &CLIError{Type: "io", Message: "cannot watch files", Err: errors.Wrapf(err, "watching %s", dir)}
		}
		dirs[dir] = true
	}
	return fw, nil
}

// Run calls onChange with the path of each written or recreated target
// until ctx is done
func (fw *fileWatcher) Run(ctx context.Context, onChange func(path string)) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.w.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			path, ok := fw.targets[filepath.Clean(ev.Name)]
			if !ok {
				continue
			}
			onChange(path)
		case err, ok := <-fw.w.Errors:
			if !ok {
				return nil
			}
			fw.log.Warn("watch error", zap.Error(err))
		}
	}
}

func (fw *fileWatcher) Close() error {
	return fw.w.Close()
}
