package definition

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch calls fn with the current contents of path, then again after every
// write to it or creation of it, until ctx is done. The parent directory is
// watched so that editors replacing the file by rename are observed. Load
// failures are passed to fn rather than ending the watch.
func Watch(ctx context.Context, path string, fn func(*Document, error)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("definition: watch %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("definition: watch %s: %w", path, err)
	}
	defer func() {
		_ = w.Close()
	}()
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("definition: watch %s: %w", path, err)
	}

	fn(LoadFile(abs))

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				// The file moved away; a replacement arrives as Create.
				slog.DebugContext(ctx, "definition moved", slog.String("path", abs), slog.String("op", ev.Op.String()))
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			slog.DebugContext(ctx, "definition changed", slog.String("path", abs), slog.String("op", ev.Op.String()))
			fn(LoadFile(abs))
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.DebugContext(ctx, "definition watch error", slog.String("path", abs), slog.String("err", err.Error()))
		}
	}
}
