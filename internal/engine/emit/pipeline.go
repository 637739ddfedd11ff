// Package emit produces output text for one file: a full, program-aware emit
// when available, an isolated single-file transform otherwise.
package emit

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/forgeline/tsbridge/internal/core/domain"
	"github.com/forgeline/tsbridge/internal/core/ports"
)

// outputCacheSize bounds the per-worker emit cache. Entries are keyed by
// path+version, so a stale version can never be served.
const outputCacheSize = 256

// Result is the output for one emitted file.
type Result struct {
	Text      string
	SourceMap string
}

type cacheKey struct {
	path    string
	version int
}

// Pipeline emits output for single files against a resident session.
type Pipeline struct {
	store         *domain.FileStore
	transpileOnly bool
	cache         *lru.Cache[cacheKey, Result]
}

// New creates a Pipeline. transpileOnly skips the full emit entirely and
// always uses the isolated transform.
func New(store *domain.FileStore, transpileOnly bool) *Pipeline {
	cache, _ := lru.New[cacheKey, Result](outputCacheSize)
	return &Pipeline{store: store, transpileOnly: transpileOnly, cache: cache}
}

// Emit produces output for path. The full emit is preferred; when it yields
// no artifact for this file (or fast mode is configured) the isolated
// transform of the file's current stored text is used instead. The isolated
// path has no cross-file type information: strictly faster, strictly less
// precise.
func (p *Pipeline) Emit(session ports.Session, path string) Result {
	key := cacheKey{path: path}
	if f := p.store.Get(path); f != nil {
		key.version = f.Version
		if cached, ok := p.cache.Get(key); ok {
			return cached
		}
	}

	result, ok := p.fullEmit(session, path)
	if !ok {
		result = p.transpile(session, path)
	}

	p.cache.Add(key, result)
	return result
}

func (p *Pipeline) fullEmit(session ports.Session, path string) (Result, bool) {
	if p.transpileOnly {
		return Result{}, false
	}
	artifacts := session.EmitOutput(path)
	if len(artifacts) == 0 {
		return Result{}, false
	}

	want := expectedOutputName(path)
	for _, artifact := range artifacts {
		if artifact.Name == want {
			return Result{Text: artifact.Text, SourceMap: artifact.SourceMap}, true
		}
	}
	// No artifact matched the naming convention; fall back to the first one
	// rather than dropping output on the floor.
	return Result{Text: artifacts[0].Text, SourceMap: artifacts[0].SourceMap}, true
}

func (p *Pipeline) transpile(session ports.Session, path string) Result {
	text := ""
	if f := p.store.Get(path); f != nil {
		text = f.Text
	}
	out := session.Transpile(path, text)
	return Result{Text: out.Text, SourceMap: out.SourceMap}
}

// expectedOutputName maps a source path to its conventional output name.
func expectedOutputName(path string) string {
	switch {
	case strings.HasSuffix(path, ".tsx"):
		return strings.TrimSuffix(path, ".tsx") + ".jsx"
	case strings.HasSuffix(path, ".ts"):
		return strings.TrimSuffix(path, ".ts") + ".js"
	}
	return path + ".js"
}
