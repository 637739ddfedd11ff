package domain

import (
	"os"
	"sort"
)

// FileStore owns the set of tracked source files and the shared project
// version counter. The project version increases by exactly one whenever a
// file is added or a file's content actually changes; identical-text updates
// leave both counters untouched.
//
// The store is not safe for concurrent use. The dispatcher serializes all
// access, so no locking is needed here.
type FileStore struct {
	files          map[string]*SourceFile
	projectVersion int
}

// NewFileStore creates an empty FileStore.
func NewFileStore() *FileStore {
	return &FileStore{files: make(map[string]*SourceFile)}
}

// ProjectVersion returns the coarse cache-invalidation counter.
func (s *FileStore) ProjectVersion() int {
	return s.projectVersion
}

// EnsureLoaded makes sure path is tracked, reading it from disk if necessary.
// An unreadable or nonexistent path is left untracked; that is not an error,
// later queries simply report the file as unknown.
func (s *FileStore) EnsureLoaded(path string) {
	if _, ok := s.files[path]; ok {
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	s.files[path] = NewSourceFile(path, string(data))
	s.projectVersion++
}

// Update sets the content of path. A tracked file with identical text is a
// no-op. A tracked file with different text gets a new version and snapshot.
// An untracked path is created at version 0. Any content-affecting change
// bumps the project version exactly once.
func (s *FileStore) Update(path, text string) {
	f, ok := s.files[path]
	if !ok {
		s.files[path] = NewSourceFile(path, text)
		s.projectVersion++
		return
	}
	if f.sameContent(text) {
		return
	}
	f.replace(text)
	s.projectVersion++
}

// Get returns the tracked file for path, or nil if untracked.
func (s *FileStore) Get(path string) *SourceFile {
	return s.files[path]
}

// List returns the tracked file paths in sorted order.
func (s *FileStore) List() []string {
	paths := make([]string, 0, len(s.files))
	for p := range s.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
