// Package prefs persists the user's preferences in a YAML file.
package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"launchapp/internal/config"
	"launchapp/internal/window"
	"launchapp/pkg/logging"
)

const (
	subsystem = "Prefs"
	fileName  = "preferences.yaml"
)

// Store reads and writes preferences. It is safe for concurrent use: every
// access to the viper instance, including reloads, happens under mu.
type Store struct {
	mu             sync.Mutex
	v              *viper.Viper
	path           string
	skipNextReload bool
	watcher        *fsnotify.Watcher
	callbacks      []func()
}

// DefaultPath returns ~/.config/launchapp/preferences.yaml.
func DefaultPath() (string, error) {
	dir, err := config.GetUserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

// Open loads the preferences at path, creating the file with defaults when
// it does not exist yet.
func Open(path string) (*Store, error) {
	v := newViper(path)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create preferences directory: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read preferences from %s: %w", path, err)
		}
		if err := v.WriteConfigAs(path); err != nil {
			return nil, fmt.Errorf("failed to create preferences file %s: %w", path, err)
		}
		logging.Info(subsystem, "Created preferences file %s", path)
	}

	return &Store{v: v, path: path}, nil
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	for _, o := range Options() {
		if o.Default != nil {
			v.SetDefault(o.Name, o.Default)
		}
	}
	return v
}

// Path returns the location of the preferences file.
func (s *Store) Path() string {
	return s.path
}

// Bool returns a boolean preference.
func (s *Store) Bool(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.GetBool(key)
}

// String returns a string preference.
func (s *Store) String(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.GetString(key)
}

// Get returns the raw value of a preference.
func (s *Store) Get(key string) any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Get(key)
}

// Set stores value under key and writes the file.
func (s *Store) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.v.Set(key, value)
	if s.watcher != nil {
		s.skipNextReload = true
	}
	if err := s.v.WriteConfigAs(s.path); err != nil {
		s.skipNextReload = false
		return fmt.Errorf("failed to store %s: %w", key, err)
	}
	logging.Debug(subsystem, "Stored %s = %v", key, value)
	return nil
}

// Snapshot returns the preferences the window consults for a decision.
func (s *Store) Snapshot() window.Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return window.Preferences{
		AllowMultipleDocks:   s.v.GetBool(KeyAllowMultipleDocks),
		ShowAdvancedControls: s.v.GetBool(KeyShowAdvancedControls),
	}
}

// OnChange registers a callback for edits made to the file by someone else.
func (s *Store) OnChange(callback func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.callbacks = append(s.callbacks, callback)
}

// Watch starts watching the preferences file. Changes caused by Set are not
// reported.
func (s *Store) Watch() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.watcher != nil {
		return nil
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to watch preferences: %w", err)
	}
	// The directory is watched so editors that replace the file are seen.
	if err := w.Add(filepath.Dir(s.path)); err != nil {
		_ = w.Close()
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(s.path), err)
	}
	s.watcher = w
	go s.watch(w)
	return nil
}

// Close stops watching the file.
func (s *Store) Close() error {
	s.mu.Lock()
	w := s.watcher
	s.watcher = nil
	s.mu.Unlock()
	if w == nil {
		return nil
	}
	return w.Close()
}

func (s *Store) watch(w *fsnotify.Watcher) {
	for {
		select {
		case e, ok := <-w.Events:
			if !ok {
				return
			}
			if filepath.Clean(e.Name) != filepath.Clean(s.path) || !e.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			if s.reload(e) {
				s.notify()
			}
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			logging.Warn(subsystem, "Watching preferences: %v", err)
		}
	}
}

// reload re-reads the file into a fresh viper and swaps it in. It reports
// whether the callbacks should run.
func (s *Store) reload(e fsnotify.Event) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.skipNextReload {
		s.skipNextReload = false
		return false
	}
	v := newViper(s.path)
	if err := v.ReadInConfig(); err != nil {
		logging.Warn(subsystem, "Ignoring unreadable preferences: %v", err)
		return false
	}
	s.v = v
	logging.Debug(subsystem, "Preferences changed on disk (%s)", e.Op)
	return true
}

func (s *Store) notify() {
	s.mu.Lock()
	callbacks := make([]func(), len(s.callbacks))
	copy(callbacks, s.callbacks)
	s.mu.Unlock()

	for _, cb := range callbacks {
		cb()
	}
}
