// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the palette file at the given path every time it is
// written, created or renamed into place, and calls onChange with the
// result of [Load]. It blocks until ctx is done, at which point it
// returns nil. The directory containing the file is watched so that
// editors that save by replacing the file are also seen.
func Watch(ctx context.Context, path string, onChange func(*Palette, error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("palette: creating watcher: %w", err)
	}
	defer watcher.Close()

	target := filepath.Clean(path)
	dir := filepath.Dir(target)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("palette: watching %s: %w", dir, err)
	}
	slog.Debug("watching palette", "path", target)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target || !event.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			p, err := Load(target)
			if err != nil {
				slog.Error("reloading palette", "path", target, "err", err)
			} else {
				slog.Info("reloaded palette", "path", target, "entries", p.Len())
			}
			onChange(p, err)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("palette watcher", "path", target, "err", err)
		}
	}
}
