package cache

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
)

const fileExtension = ".msgpack"

// FileStore keeps one file per key in a directory, which is created on the first Put.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Path returns the file used for key.
func (s *FileStore) Path(key Key) string {
	name := url.PathEscape(key.VideoID) + languageSeparator + url.PathEscape(key.Languages) + fileExtension
	return filepath.Join(s.dir, name)
}

func (s *FileStore) Get(key Key) (*Entry, error) {
	data, err := os.ReadFile(s.Path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrMiss
	} else if err != nil {
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}
	entry, err := decode(data)
	if err != nil {
		return nil, err
	}
	// Escaped file names are not unique, e.g. "a_b"+"c" and "a"+"b_c"
	if entry.VideoID != key.VideoID || entry.Languages != key.Languages {
		return nil, ErrMiss
	}
	return entry, nil
}

func (s *FileStore) Put(key Key, entry *Entry) error {
	data, err := encode(entry)
	if err != nil {
		return fmt.Errorf("failed to encode cache entry: %w", err)
	}
	w, err := newAtomicWriter(s.Path(key))
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		_ = w.Abort()
		return fmt.Errorf("failed to write cache file: %w", err)
	}
	return w.Commit()
}

func (s *FileStore) Close() error {
	return nil
}

// atomicWriter writes to a temporary file in the target directory, and renames it over the target on Commit, so
// readers never see a partially written entry.
type atomicWriter struct {
	path    string
	tmpPath string
	file    *os.File
}

func newAtomicWriter(path string) (*atomicWriter, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	tmpFile, err := os.CreateTemp(dir, ".ytt-*.tmp")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	return &atomicWriter{
		path:    path,
		tmpPath: tmpFile.Name(),
		file:    tmpFile,
	}, nil
}

func (w *atomicWriter) Write(p []byte) (n int, err error) {
	return w.file.Write(p)
}

func (w *atomicWriter) Commit() error {
	if err := w.file.Sync(); err != nil {
		_ = w.Abort()
		return fmt.Errorf("sync: %w", err)
	}
	if err := w.file.Close(); err != nil {
		_ = os.Remove(w.tmpPath)
		return fmt.Errorf("close: %w", err)
	}
	if err := os.Rename(w.tmpPath, w.path); err != nil {
		_ = os.Remove(w.tmpPath)
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}

func (w *atomicWriter) Abort() error {
	_ = w.file.Close()
	return os.Remove(w.tmpPath)
}
