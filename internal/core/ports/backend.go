package ports

import "github.com/forgeline/tsbridge/internal/core/domain"

// EmitArtifact is one output file produced by a full emit.
type EmitArtifact struct {
	Name      string
	Text      string
	SourceMap string
}

// TranspileResult is the output of an isolated single-file transform.
type TranspileResult struct {
	Text      string
	SourceMap string
}

// Backend is a pluggable compiler/analysis engine. Backends are registered
// under a name at startup and selected during Init; they are never loaded
// from a runtime-resolved path.
//
//go:generate go run go.uber.org/mock/mockgen -source=backend.go -destination=mocks/mock_backend.go -package=mocks
type Backend interface {
	// Name identifies the backend in the registry.
	Name() string

	// NewSession constructs the backend's resident incremental session from
	// the host, compiler options, and the initial root file list. The session
	// lives for the lifetime of the worker; a construction failure is fatal.
	NewSession(host CompilerHost, options domain.CompilerOptions, rootFiles []string) (Session, error)
}

// Session is a backend's long-lived incremental analysis state. All methods
// re-use previously computed state, re-analyzing only files whose host
// version changed since the last query.
type Session interface {
	// ProgramFiles lists every file currently part of the analyzed program,
	// roots first, then files discovered through resolution.
	ProgramFiles() []string

	// EmitOutput performs a full, program-aware emit for path. An empty
	// result means the file has no emittable output under current settings;
	// that is not an error.
	EmitOutput(path string) []EmitArtifact

	// Transpile performs an isolated single-file transform of text, with no
	// cross-file information and diagnostics suppressed.
	Transpile(path, text string) TranspileResult

	OptionDiagnostics() []domain.Diagnostic
	GlobalDiagnostics() []domain.Diagnostic
	SyntacticDiagnostics() []domain.Diagnostic
	SemanticDiagnostics() []domain.Diagnostic
}
