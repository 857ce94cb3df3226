package app

import (
	"github.com/fsnotify/fsnotify"

	"github.com/dshills/bigtext/internal/render/backend"
)

// loop services key and resize events (screen mode) and file change
// notifications (watch mode) until a key press or a closed watcher.
func (a *App) loop() error {
	var keys chan backend.Event
	if a.opts.Screen {
		keys = make(chan backend.Event)
		go func() {
			for {
				keys <- a.backend.PollEvent()
			}
		}()
	}

	var fsEvents chan fsnotify.Event
	var fsErrors chan error
	if a.opts.Watch {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return err
		}
		defer watcher.Close()

		if a.opts.ConfigPath != "" {
			if err := watcher.Add(a.opts.ConfigPath); err != nil {
				return err
			}
		}
		if a.cfg.FontDir != "" {
			if err := watcher.Add(a.cfg.FontDir); err != nil {
				return err
			}
		}
		fsEvents = watcher.Events
		fsErrors = watcher.Errors
	}

	log := a.logger.WithComponent("watch")
	for {
		select {
		case ev := <-keys:
			switch ev.Type {
			case backend.EventKey:
				return nil
			case backend.EventResize:
				a.backend.Clear()
				if err := a.render(); err != nil {
					return err
				}
			}
		case ev, ok := <-fsEvents:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) != 0 {
				log.Info("change detected: %s", ev.Name)
				a.reload()
			}
		case err, ok := <-fsErrors:
			if !ok {
				return nil
			}
			log.Warn("watcher error: %v", err)
		}
	}
}
