// Package store provides arena-style in-memory keyed stores for uploaded
// files, style guides, and knowledge-base documents. Records are immutable
// once stored; callers receive value copies, never shared references.
package store

import (
	"errors"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a record id is absent from a store.
var ErrNotFound = errors.New("not found")

// MaxFileSize caps uploaded source files at 10 MiB.
const MaxFileSize = 10 * 1024 * 1024

// allowedExtensions is the set of accepted C++ source file extensions.
//
//nolint:gochecknoglobals // Fixed allowlist
var allowedExtensions = map[string]bool{
	".cpp": true,
	".cc":  true,
	".cxx": true,
	".hpp": true,
	".hh":  true,
	".h":   true,
}

// AllowedExtension reports whether the file name carries an accepted C++
// extension.
func AllowedExtension(name string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(name))]
}

// AllowedExtensions returns the accepted extensions in sorted order.
func AllowedExtensions() []string {
	exts := make([]string, 0, len(allowedExtensions))
	for ext := range allowedExtensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// File is one stored source file.
type File struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Content  string    `json:"content"`
	Size     int       `json:"size"`
	Language string    `json:"language,omitempty"`
	Uploaded time.Time `json:"uploaded"`
}

// FileStore is an in-memory file store keyed by generated id.
type FileStore struct {
	mu    sync.RWMutex
	files map[string]File
}

// NewFileStore creates an empty FileStore.
func NewFileStore() *FileStore {
	return &FileStore{files: make(map[string]File)}
}

// Put stores a file and returns its generated id.
func (s *FileStore) Put(name, content, language string) string {
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[id] = File{
		ID:       id,
		Name:     name,
		Content:  content,
		Size:     len(content),
		Language: language,
		Uploaded: time.Now().UTC(),
	}

	return id
}

// Get returns the file with the given id, or ErrNotFound.
func (s *FileStore) Get(id string) (File, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.files[id]
	if !ok {
		return File{}, ErrNotFound
	}
	return f, nil
}

// Delete removes the file with the given id, or returns ErrNotFound.
func (s *FileStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.files[id]; !ok {
		return ErrNotFound
	}
	delete(s.files, id)
	return nil
}

// List returns all stored files sorted by upload time, then id.
func (s *FileStore) List() []File {
	s.mu.RLock()
	defer s.mu.RUnlock()

	files := make([]File, 0, len(s.files))
	for _, f := range s.files {
		files = append(files, f)
	}

	sort.Slice(files, func(i, j int) bool {
		if !files[i].Uploaded.Equal(files[j].Uploaded) {
			return files[i].Uploaded.Before(files[j].Uploaded)
		}
		return files[i].ID < files[j].ID
	})

	return files
}
