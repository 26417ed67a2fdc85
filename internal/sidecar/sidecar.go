package sidecar

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/pelletier/go-toml/v2"
)

// FileName is the marker file written into each processed directory.
const FileName = ".streamplan"

// Marker holds the processing records for one directory. Entries are keyed
// by plugin name, then by file basename; the value is the list of language
// codes the plugin handled for that file.
type Marker struct {
	dir     string
	path    string
	lock    *flock.Flock
	entries map[string]map[string][]string
}

// Load reads the marker for dir. A missing file yields an empty marker; a
// corrupt one is reported but still yields a usable empty marker so callers
// can treat the directory as unprocessed.
func Load(dir string) (*Marker, error) {
	path := filepath.Join(dir, FileName)
	marker := &Marker{
		dir:     dir,
		path:    path,
		lock:    flock.New(path + ".lock"),
		entries: make(map[string]map[string][]string),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return marker, nil
		}
		return marker, fmt.Errorf("read marker file: %w", err)
	}
	if len(data) == 0 {
		return marker, nil
	}
	if err := toml.Unmarshal(data, &marker.entries); err != nil {
		return marker, fmt.Errorf("parse marker file: %w", err)
	}
	if marker.entries == nil {
		marker.entries = make(map[string]map[string][]string)
	}
	return marker, nil
}

// Languages returns the recorded language codes for a file, or nil when the
// plugin has not processed it.
func (m *Marker) Languages(plugin, name string) []string {
	files, ok := m.entries[plugin]
	if !ok {
		return nil
	}
	return files[name]
}

// Processed reports whether the plugin has a non-empty record for the file.
func (m *Marker) Processed(plugin, name string) bool {
	return len(m.Languages(plugin, name)) > 0
}

// Record stores the handled language codes for a file under the plugin's
// section, replacing any previous record.
func (m *Marker) Record(plugin, name string, languages []string) {
	files, ok := m.entries[plugin]
	if !ok {
		files = make(map[string][]string)
		m.entries[plugin] = files
	}
	files[name] = append([]string(nil), languages...)
}

// Save writes the marker atomically, holding a file lock so concurrent
// workers in the same directory do not clobber each other.
func (m *Marker) Save() error {
	if err := m.lock.Lock(); err != nil {
		return fmt.Errorf("acquire marker lock: %w", err)
	}
	defer func() { _ = m.lock.Unlock() }()

	data, err := toml.Marshal(m.entries)
	if err != nil {
		return fmt.Errorf("marshal marker: %w", err)
	}

	tmp, err := os.CreateTemp(m.dir, FileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp marker: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write temp marker: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp marker: %w", err)
	}
	if err := os.Rename(tmpPath, m.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace marker: %w", err)
	}
	return nil
}

// Path returns the marker file location.
func (m *Marker) Path() string {
	return m.path
}
