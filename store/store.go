// Package store persists the demo application's state between runs: the last
// committed value per field key and window preferences. The editfield control
// itself never touches storage; the demo's commit callback feeds this store.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v3"
)

// Store is what the demo app needs from persistence.
type Store interface {
	SaveValues(values Values) error
	LoadValues() (Values, error)
	SavePrefs(prefs Prefs) error
	LoadPrefs() (Prefs, error)
}

// FileStore keeps a values document and a prefs document as files under a
// scope-derived directory, one serialization format per store.
type FileStore[V any, P any] struct {
	dir    string
	format string
}

// NewFileStore creates a store under the user cache directory, scoped by the
// given path elements, e.g. {"editfield", profileID}.
func NewFileStore[V any, P any](scope []string, format string) (*FileStore[V, P], error) {
	if len(scope) == 0 {
		return nil, errors.New("store scope cannot be empty")
	}
	return NewFileStoreAt[V, P](filepath.Join(append([]string{cacheRoot()}, scope...)...), format)
}

// NewFileStoreAt creates a store rooted at an explicit directory.
func NewFileStoreAt[V any, P any](dir, format string) (*FileStore[V, P], error) {
	switch format {
	case "yaml", "json":
	default:
		return nil, errors.Errorf("unsupported store format: %s", format)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "creating store directory")
	}
	return &FileStore[V, P]{dir: dir, format: format}, nil
}

func (fs *FileStore[V, P]) marshal(data any) ([]byte, error) {
	if fs.format == "json" {
		return json.Marshal(data)
	}
	return yaml.Marshal(data)
}

func (fs *FileStore[V, P]) unmarshal(raw []byte, out any) error {
	if fs.format == "json" {
		return json.Unmarshal(raw, out)
	}
	return yaml.Unmarshal(raw, out)
}

func (fs *FileStore[V, P]) valuesPath() string {
	return filepath.Join(fs.dir, "values."+fs.format)
}

func (fs *FileStore[V, P]) prefsPath() string {
	return filepath.Join(fs.dir, "prefs."+fs.format)
}

func (fs *FileStore[V, P]) save(path string, data any) error {
	serialized, err := fs.marshal(data)
	if err != nil {
		return errors.Wrap(err, "serializing store document")
	}
	return errors.Wrap(os.WriteFile(path, serialized, 0o644), "writing store document")
}

// load fills out from path; a missing file leaves out at its zero value.
func (fs *FileStore[V, P]) load(path string, out any) error {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "reading store document")
	}
	return errors.Wrapf(fs.unmarshal(raw, out), "parsing %s", path)
}

// SaveValues persists the committed-values document.
func (fs *FileStore[V, P]) SaveValues(values V) error {
	return fs.save(fs.valuesPath(), values)
}

// LoadValues reads the committed-values document, zero when absent.
func (fs *FileStore[V, P]) LoadValues() (V, error) {
	var values V
	err := fs.load(fs.valuesPath(), &values)
	return values, err
}

// SavePrefs persists the preferences document.
func (fs *FileStore[V, P]) SavePrefs(prefs P) error {
	return fs.save(fs.prefsPath(), prefs)
}

// LoadPrefs reads the preferences document, zero when absent.
func (fs *FileStore[V, P]) LoadPrefs() (P, error) {
	var prefs P
	err := fs.load(fs.prefsPath(), &prefs)
	return prefs, err
}

func cacheRoot() string {
	return filepath.Join(os.Getenv("HOME"), ".cache")
}
