package partition

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"

	"github.com/bytom/timepart/datefmt"
)

// Watcher reports entries created directly inside a directory whose names
// are partition labels.
type Watcher struct {
	format  *datefmt.DateFormat
	dir     string
	watcher *fsnotify.Watcher

	events chan Partition
	errors chan error
	quit   chan struct{}
	once   sync.Once
	wg     sync.WaitGroup
}

// NewWatcher starts watching dir.
func NewWatcher(f *datefmt.DateFormat, dir string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{
		format:  f,
		dir:     dir,
		watcher: fw,
		events:  make(chan Partition),
		errors:  make(chan error),
		quit:    make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Events delivers new partitions. It is closed by Close.
func (w *Watcher) Events() <-chan Partition {
	return w.events
}

// Errors delivers errors from the underlying watcher.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.quit)
		err = w.watcher.Close()
		w.wg.Wait()
		close(w.events)
	})
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if ev.Op&fsnotify.Create == 0 {
				continue
			}

			p, ok := w.partition(ev.Name)
			if !ok {
				continue
			}

			log.WithFields(log.Fields{"module": logModule, "label": p.Label}).Debug("partition created")
			select {
			case w.events <- p:
			case <-w.quit:
				return
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			case <-w.quit:
				return
			}

		case <-w.quit:
			return
		}
	}
}

func (w *Watcher) partition(name string) (Partition, bool) {
	rel, err := filepath.Rel(w.dir, name)
	if err != nil {
		return Partition{}, false
	}

	label := filepath.ToSlash(rel)
	t, err := w.format.Parse(label)
	if err != nil {
		return Partition{}, false
	}
	return Partition{Label: label, Time: t}, true
}
