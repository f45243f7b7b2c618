// Package watch runs a callback whenever one file changes, with debouncing
// so editor save bursts collapse into a single invocation.
package watch

import (
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// File watches path's parent directory and invokes onChange after debounce
// has elapsed without further events touching the file. Watching the
// directory instead of the file itself keeps watches alive across the
// rename/replace cycles editors and atomic writers use. The returned Closer
// stops the watcher and waits for the loop to exit.
func File(path string, debounce time.Duration, onChange func()) (io.Closer, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	stopCh := make(chan struct{})
	doneCh := make(chan struct{})

	go func() {
		defer close(doneCh)
		var (
			timer  *time.Timer
			timerC <-chan time.Time
		)
		resetTimer := func() {
			if timer == nil {
				timer = time.NewTimer(debounce)
				timerC = timer.C
				return
			}
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(debounce)
			timerC = timer.C
		}

		for {
			select {
			case <-stopCh:
				if timer != nil {
					timer.Stop()
				}
				return
			case <-timerC:
				timerC = nil
				onChange()
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if shouldTrigger(evt, abs) {
					resetTimer()
				}
			}
		}
	}()

	return closerFunc(func() error {
		close(stopCh)
		_ = watcher.Close()
		<-doneCh
		return nil
	}), nil
}

func shouldTrigger(evt fsnotify.Event, target string) bool {
	if strings.TrimSpace(evt.Name) == "" {
		return false
	}
	if evt.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	name, err := filepath.Abs(evt.Name)
	if err != nil {
		return false
	}
	return name == target
}
