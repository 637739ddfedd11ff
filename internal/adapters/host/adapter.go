// Package host bridges the versioned file store to the query surface a
// compiler backend expects, and records dependency edges discovered during
// resolution.
package host

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/forgeline/tsbridge/internal/core/domain"
	"github.com/forgeline/tsbridge/internal/core/ports"
)

var _ ports.CompilerHost = (*Adapter)(nil)

// Adapter implements ports.CompilerHost over a FileStore, a DepGraph, and the
// ambient filesystem. Resolution methods feed the DepGraph as a side effect.
type Adapter struct {
	store   *domain.FileStore
	deps    *domain.DepGraph
	options domain.CompilerOptions
}

// New creates a host adapter for one compilation session.
func New(store *domain.FileStore, deps *domain.DepGraph, options domain.CompilerOptions) *Adapter {
	return &Adapter{store: store, deps: deps, options: options}
}

// ProjectVersion implements ports.CompilerHost.
func (a *Adapter) ProjectVersion() int {
	return a.store.ProjectVersion()
}

// FileNames implements ports.CompilerHost.
func (a *Adapter) FileNames() []string {
	return a.store.List()
}

// FileVersion implements ports.CompilerHost, loading the file lazily.
func (a *Adapter) FileVersion(path string) (int, bool) {
	a.store.EnsureLoaded(path)
	f := a.store.Get(path)
	if f == nil {
		return 0, false
	}
	return f.Version, true
}

// FileSnapshot implements ports.CompilerHost, loading the file lazily.
func (a *Adapter) FileSnapshot(path string) (domain.Snapshot, bool) {
	a.store.EnsureLoaded(path)
	f := a.store.Get(path)
	if f == nil {
		return domain.Snapshot{}, false
	}
	return f.Snapshot(), true
}

// CompilationSettings implements ports.CompilerHost.
func (a *Adapter) CompilationSettings() domain.CompilerOptions {
	return a.options
}

// FileExists implements ports.CompilerHost.
func (a *Adapter) FileExists(path string) bool {
	if a.store.Get(path) != nil {
		return true
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// ReadFile implements ports.CompilerHost. Tracked content wins over the disk
// state so the backend always sees the store's version of an updated file.
func (a *Adapter) ReadFile(path string) (string, bool) {
	if f := a.store.Get(path); f != nil {
		return f.Text, true
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	return string(data), true
}

// ReadDirectory implements ports.CompilerHost. depth 0 means unlimited.
func (a *Adapter) ReadDirectory(root string, extensions []string, excludes []string, includes []string, depth int) []string {
	var result []string

	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil || rel == "." {
			return nil
		}
		if depth > 0 && strings.Count(rel, string(filepath.Separator))+1 > depth {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if matchesAny(rel, excludes) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !hasExtension(path, extensions) {
			return nil
		}
		if len(includes) > 0 && !matchesAny(rel, includes) {
			return nil
		}
		result = append(result, path)
		return nil
	})

	return result
}

func hasExtension(path string, extensions []string) bool {
	if len(extensions) == 0 {
		return true
	}
	for _, ext := range extensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

func matchesAny(rel string, patterns []string) bool {
	for _, pattern := range patterns {
		if ok, err := filepath.Match(pattern, rel); err == nil && ok {
			return true
		}
		if ok, err := filepath.Match(pattern, filepath.Base(rel)); err == nil && ok {
			return true
		}
	}
	return false
}
