package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/fsnotify/fsnotify"

	logger "github.com/PolarWolf314/pigment/internal/logging"
)

// BlobKey is the TOML key holding the blob inside the state file.
const BlobKey = "akasha"

// DefaultDebounce coalesces the burst of events a single save produces.
const DefaultDebounce = 100 * time.Millisecond

type stateFile struct {
	Akasha string `toml:"akasha"`
}

// FileBackend stores the blob in a TOML state file.
type FileBackend struct {
	path string

	// Debounce is how long Watch waits after the last event before notifying.
	Debounce time.Duration

	Logger logger.Logger
}

// NewFileBackend returns a backend for the state file at path.
func NewFileBackend(path string) (*FileBackend, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve state file path: %w", err)
	}
	return &FileBackend{path: abs, Debounce: DefaultDebounce}, nil
}

// Path returns the absolute path of the state file.
func (f *FileBackend) Path() string {
	return f.path
}

func (f *FileBackend) Get(ctx context.Context) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read state file: %w", err)
	}

	var doc stateFile
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return "", false, fmt.Errorf("failed to parse state file: %w", err)
	}
	if !md.IsDefined(BlobKey) {
		return "", false, nil
	}
	return doc.Akasha, true, nil
}

// Set writes the state file through a temporary file in the same directory
// and renames it into place.
func (f *FileBackend) Set(ctx context.Context, blob string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(stateFile{Akasha: blob}); err != nil {
		return fmt.Errorf("failed to encode state file: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary state file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temporary state file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync temporary state file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temporary state file: %w", err)
	}
	if err := os.Chmod(tmpName, 0600); err != nil {
		return fmt.Errorf("failed to set state file permissions: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		return fmt.Errorf("failed to replace state file: %w", err)
	}
	return nil
}

// Watch watches the state file's directory, since saves replace the file
// rather than writing to it. It returns nil once ctx is done.
func (f *FileBackend) Watch(ctx context.Context, notify func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer w.Close()

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	f.Logger.Debugf("Watching %s", f.path)

	debounce := f.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !f.relevant(event) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			notify()

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			f.Logger.Warnf("File watcher error: %v", err)
		}
	}
}

func (f *FileBackend) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != f.path {
		return false
	}
	return event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) != 0
}
