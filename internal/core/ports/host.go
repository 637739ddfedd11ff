// Package ports defines the contracts between the worker core and its
// pluggable collaborators.
package ports

import "github.com/forgeline/tsbridge/internal/core/domain"

// ResolvedModule is one successful module resolution. A failed resolution is
// represented by the zero value with Resolved == false; failures are silent,
// they are neither recorded as dependency edges nor reported as errors.
type ResolvedModule struct {
	ResolvedFileName string
	Resolved         bool
}

// CompilerHost is the capability surface a backend queries for project state.
// Any backend implementing its session against this interface is
// substitutable.
//
// ResolveModuleNames and ResolveTypeReferenceDirectives are dual-purpose: they
// return resolutions to the backend and, as a side effect, record every
// successfully resolved target as a dependency edge from the containing file.
//
//go:generate go run go.uber.org/mock/mockgen -source=host.go -destination=mocks/mock_host.go -package=mocks
type CompilerHost interface {
	// ProjectVersion is a coarse invalidation signal: it changes whenever any
	// tracked file is added or modified.
	ProjectVersion() int

	// FileNames lists the currently tracked file paths.
	FileNames() []string

	// FileVersion returns the version counter for path, loading the file
	// lazily. ok is false when the path cannot be tracked.
	FileVersion(path string) (version int, ok bool)

	// FileSnapshot returns the immutable content handle for path, loading the
	// file lazily. ok is false when the path cannot be tracked.
	FileSnapshot(path string) (snapshot domain.Snapshot, ok bool)

	// CompilationSettings returns the options the session was created with.
	CompilationSettings() domain.CompilerOptions

	// FileExists checks the store first, then the ambient filesystem.
	FileExists(path string) bool

	// ReadFile reads path from the store or the ambient filesystem.
	ReadFile(path string) (string, bool)

	// ReadDirectory lists files under path matching the given extensions,
	// honoring exclude and include glob patterns up to depth levels. A depth
	// of 0 means unlimited.
	ReadDirectory(path string, extensions []string, excludes []string, includes []string, depth int) []string

	// ResolveModuleNames resolves import specifiers relative to
	// containingFile. The result has one entry per name, in order.
	ResolveModuleNames(containingFile string, names []string) []ResolvedModule

	// ResolveTypeReferenceDirectives resolves /// <reference types="..."/>
	// style directives against the configured type roots.
	ResolveTypeReferenceDirectives(containingFile string, names []string) []ResolvedModule
}
