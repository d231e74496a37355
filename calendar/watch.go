package calendar

import (
	"fmt"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/sporadisk/prayercal/config"
)

// Watch reruns Build whenever the config file at confPath is written to, so
// a lead/lag or location tweak regenerates the CSV without restarting the
// tool. Blocks until the watcher dies.
func (b *Builder) Watch(confPath string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("fsnotify.NewWatcher: %w", err)
	}
	defer watcher.Close()

	w := &watchState{builder: b, confPath: confPath}
	go w.watchResponder(watcher)

	err = watcher.Add(confPath)
	if err != nil {
		return fmt.Errorf("watcher.Add: %w", err)
	}

	// Run once up front with the config we already have.
	err = b.Build()
	if err != nil {
		logrus.WithError(err).Error("initial build failed")
	}

	// Block main goroutine forever.
	// TODO: implement proper shutdown handling
	<-make(chan struct{})
	return nil
}

type watchState struct {
	builder  *Builder
	confPath string
	lastRun  time.Time
	mu       sync.Mutex
}

func (w *watchState) watchResponder(watcher *fsnotify.Watcher) {
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				logrus.Error("watcher.Events is not okay.")
				return
			}
			if event.Has(fsnotify.Write) {
				err := w.reactToConfigWrite()
				if err != nil {
					logrus.WithError(err).Error("rebuild after config change failed")
				}
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				logrus.Error("watcher.Errors is not okay.")
				return
			}
			logrus.WithError(err).Error("watcher error")
		}
	}
}

func (w *watchState) reactToConfigWrite() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	timeElapsed := time.Since(w.lastRun)
	if timeElapsed < time.Second { // react at most once per second
		return nil
	}
	w.lastRun = time.Now()

	conf, err := config.Load(w.confPath)
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	w.builder.Conf = conf

	logrus.Info("config changed, regenerating calendar")
	err = w.builder.Build()
	if err != nil {
		return fmt.Errorf("Build: %w", err)
	}

	return nil
}
