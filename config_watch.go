package picking

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 100 * time.Millisecond

// ConfigWatcher reloads a YAML config file whenever it changes on disk.
// Parsed configs arrive on Configs and failures on Errors; the frame loop
// applies them with Machine.SetConfig so the machine keeps a single writer.
type ConfigWatcher struct {
	Configs chan Config
	Errors  chan error

	path    string
	watcher *fsnotify.Watcher
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// WatchConfig starts watching path. The directory is watched rather than the
// file so editors that replace the file on save are still seen.
func WatchConfig(path string) (*ConfigWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, err
	}
	cw := &ConfigWatcher{
		Configs: make(chan Config, 1),
		Errors:  make(chan error, 1),
		path:    filepath.Clean(path),
		watcher: w,
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go cw.run()
	return cw, nil
}

// Close stops the watcher and closes both channels.
func (cw *ConfigWatcher) Close() error {
	var err error
	cw.once.Do(func() {
		close(cw.closeCh)
		err = cw.watcher.Close()
		<-cw.done
		close(cw.Configs)
		close(cw.Errors)
	})
	return err
}

// Poll returns the most recent reloaded config without blocking.
func (cw *ConfigWatcher) Poll() (Config, bool) {
	select {
	case cfg, ok := <-cw.Configs:
		return cfg, ok
	default:
		return Config{}, false
	}
}

func (cw *ConfigWatcher) run() {
	defer close(cw.done)
	// Reload once the file has been quiet for watchDebounce, so a save that
	// arrives as several writes is read once, complete.
	var timer *time.Timer
	var reload <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()
	for {
		select {
		case event, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != cw.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(watchDebounce)
			} else {
				timer.Reset(watchDebounce)
			}
			reload = timer.C
		case <-reload:
			reload = nil
			cfg, err := LoadConfigFile(cw.path)
			if err != nil {
				cw.sendErr(err)
				continue
			}
			cw.sendConfig(cfg)
		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			cw.sendErr(err)
		case <-cw.closeCh:
			return
		}
	}
}

// sendConfig replaces any config the frame loop has not picked up yet.
func (cw *ConfigWatcher) sendConfig(cfg Config) {
	for {
		select {
		case cw.Configs <- cfg:
			return
		case <-cw.closeCh:
			return
		default:
			select {
			case <-cw.Configs:
			default:
			}
		}
	}
}

func (cw *ConfigWatcher) sendErr(err error) {
	select {
	case cw.Errors <- err:
	default:
	}
}
