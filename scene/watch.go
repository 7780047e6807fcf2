package scene

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/wireframe"
)

// settleDelay lets a burst of writes to the sheet finish before it is
// reloaded.
const settleDelay = 100 * time.Millisecond

// Watch loads the sheet at path, passes it to fn, and passes every later
// version to fn again when the file is written or replaced.
//
// The initial load must succeed. Later sheets that fail to parse are logged
// and skipped, keeping the last good output. Watch returns the first error
// from fn, or nil once ctx is cancelled.
func Watch(ctx context.Context, path string, fn func(*Scene) error) error {
	path = filepath.Clean(path)

	s, err := Load(path)
	if err != nil {
		return err
	}
	if err := fn(s); err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("scene: watch: %w", err)
	}
	defer w.Close()

	// Watch the directory so editors that replace the file are followed.
	if err := w.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("scene: watch %s: %w", path, err)
	}

	log := wireframe.Logger().With("sheet", path)
	timer := time.NewTimer(settleDelay)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			log.Debug("scene: change detected", "op", event.Op.String())
			timer.Reset(settleDelay)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("scene: watcher error", "err", err)

		case <-timer.C:
			s, err := Load(path)
			if err != nil {
				log.Warn("scene: reload failed", "err", err)
				continue
			}
			if err := fn(s); err != nil {
				return err
			}
		}
	}
}
