package config

import (
	"context"
	"fmt"

	"github.com/fsnotify/fsnotify"

	"github.com/poricom/poricom/internal/logging"
)

// Watch reports external edits of the settings files. onChange receives the
// section of every changed file and runs on the watcher goroutine, so callers
// must hand the event to their own control thread. Watching stops when ctx is
// done. The directory is watched rather than the files because every write
// replaces the file by rename.
func (s *FileStore) Watch(ctx context.Context, onChange func(section string)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(s.dir); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", s.dir, err)
	}

	log := logging.FromContext(ctx)
	log.Debug().Str("dir", s.dir).Msg("watching settings directory")

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
					continue
				}
				section := SectionFromPath(event.Name)
				if section == "" {
					continue
				}
				log.Debug().Str("op", event.Op.String()).Str("file", event.Name).Msg("settings file changed")
				onChange(section)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Warn().Err(err).Msg("settings watcher error")
			}
		}
	}()

	return nil
}
