package main

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/ztrue/tracerr"
)

// watch checks files once, then again each time one of them is written,
// until ctx is cancelled. The parent directories are watched rather than the
// files, since editors often replace a file instead of writing to it.
func (r *runner) watch(ctx context.Context, files []string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return tracerr.Wrap(err)
	}
	defer w.Close()

	watched := map[string]bool{}
	dirs := map[string]bool{}
	for _, path := range files {
		watched[filepath.Clean(path)] = true
		dir := filepath.Dir(path)
		if dirs[dir] {
			continue
		}
		if err := w.Add(dir); err != nil {
			return tracerr.Wrap(err)
		}
		dirs[dir] = true
	}

	r.check(files)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			path := filepath.Clean(ev.Name)
			if !watched[path] || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			plog.Debugf("%s changed", path)
			if r.check([]string{path}) == nil {
				plog.Noticef("%s: ok", path)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			plog.Errorf("watch: %v", err)
		}
	}
}
