package log

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/sirupsen/logrus"

	"github.com/bytom/timepart/config"
	"github.com/bytom/timepart/datefmt"
)

var defaultFormatter = &logrus.TextFormatter{DisableColors: true}

// InitLogFile sends every log entry to per-module files under the configured
// log directory. Files are named <module>.<suffix>, the suffix rendered from
// the configured datefmt template. The caller closes the returned hook.
func InitLogFile(cfg *config.Config) (*Hook, error) {
	logPath := cfg.LogDir()
	if err := os.MkdirAll(logPath, 0700); err != nil {
		return nil, err
	}
	if err := clearLockFiles(logPath); err != nil {
		return nil, err
	}

	hook, err := NewHook(logPath, cfg.Log, clockwork.NewRealClock())
	if err != nil {
		return nil, err
	}

	logrus.AddHook(hook)
	logrus.SetOutput(ioutil.Discard)
	fmt.Printf("all logs are output in the %s directory\n", logPath)
	return hook, nil
}

type Hook struct {
	logPath string
	pattern string
	maxAge  time.Duration
	rotate  time.Duration
	clock   clockwork.Clock

	lock    sync.Mutex
	writers map[string]*rotatelogs.RotateLogs
}

// NewHook returns a hook writing under logPath.
func NewHook(logPath string, cfg *config.LogConfig, clock clockwork.Clock) (*Hook, error) {
	pattern, err := datefmt.Compile(cfg.FileTemplate).Strftime()
	if err != nil {
		return nil, err
	}

	return &Hook{
		logPath: logPath,
		pattern: pattern,
		maxAge:  time.Duration(cfg.MaxAge) * time.Second,
		rotate:  time.Duration(cfg.RotationTime) * time.Second,
		clock:   clock,
		writers: make(map[string]*rotatelogs.RotateLogs),
	}, nil
}

func (hook *Hook) writer(module string) (*rotatelogs.RotateLogs, error) {
	if w, ok := hook.writers[module]; ok {
		return w, nil
	}

	base := strings.ReplaceAll(filepath.Join(hook.logPath, module), "%", "%%")
	w, err := rotatelogs.New(
		base+"."+hook.pattern,
		rotatelogs.WithClock(hook.clock),
		rotatelogs.WithMaxAge(hook.maxAge),
		rotatelogs.WithRotationTime(hook.rotate),
	)
	if err != nil {
		return nil, err
	}

	hook.writers[module] = w
	return w, nil
}

// Write a log line to the module's file.
func (hook *Hook) ioWrite(entry *logrus.Entry) error {
	module := "general"
	if data, ok := entry.Data["module"].(string); ok {
		module = data
	}

	writer, err := hook.writer(module)
	if err != nil {
		return err
	}

	msg, err := defaultFormatter.Format(entry)
	if err != nil {
		return err
	}

	_, err = writer.Write(msg)
	return err
}

func clearLockFiles(logPath string) error {
	files, err := ioutil.ReadDir(logPath)
	if os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return err
	}

	for _, file := range files {
		if ok := strings.HasSuffix(file.Name(), "_lock"); ok {
			if err := os.Remove(filepath.Join(logPath, file.Name())); err != nil {
				return err
			}
		}
	}
	return nil
}

func (hook *Hook) Fire(entry *logrus.Entry) error {
	hook.lock.Lock()
	defer hook.lock.Unlock()
	return hook.ioWrite(entry)
}

// Levels returns configured log levels.
func (hook *Hook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Close closes every open log file.
func (hook *Hook) Close() error {
	hook.lock.Lock()
	defer hook.lock.Unlock()

	var firstErr error
	for module, w := range hook.writers {
		if err := w.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(hook.writers, module)
	}
	return firstErr
}
