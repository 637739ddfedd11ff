package sitter

import (
	"fmt"
	"strings"

	"github.com/forgeline/tsbridge/internal/core/domain"
	"github.com/forgeline/tsbridge/internal/core/ports"
)

var _ ports.Session = (*session)(nil)

// fileState caches one file's analysis keyed by the host-reported version.
type fileState struct {
	version  int
	analysis fileAnalysis
}

// session is the backend's resident incremental analysis state. It is
// constructed once and re-queried; the host's project version decides when
// the program must be re-walked, and per-file versions decide which files
// must be re-parsed during that walk.
type session struct {
	host    ports.CompilerHost
	options domain.CompilerOptions
	roots   []string

	files           map[string]*fileState
	program         []string
	analyzedVersion int
	analyzed        bool

	optionDiags   []domain.Diagnostic
	globalDiags   []domain.Diagnostic
	semanticDiags []domain.Diagnostic
}

// ensureProgram re-walks the program from the root files when any tracked
// content changed since the last walk. Resolution goes through the host, so
// dependency edges are recorded there as a side effect.
func (s *session) ensureProgram() {
	if s.analyzed && s.host.ProjectVersion() == s.analyzedVersion {
		return
	}

	s.program = s.program[:0]
	s.globalDiags = s.globalDiags[:0]
	s.semanticDiags = s.semanticDiags[:0]

	visited := make(map[string]bool)
	queue := make([]string, 0, len(s.roots))

	for _, root := range s.roots {
		if !s.host.FileExists(root) {
			s.globalDiags = append(s.globalDiags, domain.Diagnostic{
				Category: domain.CategoryGlobal,
				Code:     codeFileNotFound,
				Message:  fmt.Sprintf("File '%s' not found.", root),
			})
			continue
		}
		queue = append(queue, root)
	}

	for len(queue) > 0 {
		path := queue[0]
		queue = queue[1:]
		if visited[path] {
			continue
		}
		visited[path] = true

		state := s.ensureFile(path)
		if state == nil {
			continue
		}
		s.program = append(s.program, path)

		queue = append(queue, s.resolveImports(path, state.analysis)...)
	}

	// The walk itself can move the project version: lazily loading a newly
	// discovered dependency registers it in the store. Record the version
	// after the traversal so an unchanged project is never re-walked.
	s.analyzedVersion = s.host.ProjectVersion()
	s.analyzed = true
}

// ensureFile returns the cached analysis for path, re-parsing when the host
// reports a newer version. A path the host cannot load yields nil.
func (s *session) ensureFile(path string) *fileState {
	version, ok := s.host.FileVersion(path)
	if !ok {
		return nil
	}
	if state, cached := s.files[path]; cached && state.version == version {
		return state
	}

	snapshot, ok := s.host.FileSnapshot(path)
	if !ok {
		return nil
	}
	state := &fileState{
		version:  snapshot.Version,
		analysis: analyzeFile(path, snapshot.Text),
	}
	s.files[path] = state
	return state
}

// resolveImports resolves a file's imports and type references through the
// host, collects semantic diagnostics for relative imports that do not
// resolve, and returns the resolved targets for program traversal.
func (s *session) resolveImports(path string, analysis fileAnalysis) []string {
	names := make([]string, len(analysis.imports))
	for i, ref := range analysis.imports {
		names[i] = ref.specifier
	}

	var next []string
	for i, resolution := range s.host.ResolveModuleNames(path, names) {
		ref := analysis.imports[i]
		if resolution.Resolved {
			next = append(next, resolution.ResolvedFileName)
			continue
		}
		if isRelative(ref.specifier) {
			s.semanticDiags = append(s.semanticDiags, domain.Diagnostic{
				Category: domain.CategorySemantic,
				Code:     codeCannotFindModule,
				File:     path,
				Start:    ref.offset,
				Message:  fmt.Sprintf("Cannot find module '%s'.", ref.specifier),
			})
		}
	}

	for _, resolution := range s.host.ResolveTypeReferenceDirectives(path, analysis.typeRefs) {
		if resolution.Resolved {
			next = append(next, resolution.ResolvedFileName)
		}
	}
	return next
}

func isRelative(specifier string) bool {
	return strings.HasPrefix(specifier, "./") || strings.HasPrefix(specifier, "../")
}

// ProgramFiles implements ports.Session.
func (s *session) ProgramFiles() []string {
	s.ensureProgram()
	return append([]string(nil), s.program...)
}

// EmitOutput implements ports.Session. Declaration files have no emittable
// output; files outside the program are not emitted either.
func (s *session) EmitOutput(path string) []ports.EmitArtifact {
	s.ensureProgram()

	if strings.HasSuffix(path, ".d.ts") || !s.inProgram(path) {
		return nil
	}
	snapshot, ok := s.host.FileSnapshot(path)
	if !ok {
		return nil
	}

	text := blankTypes(path, snapshot.Text)
	artifact := ports.EmitArtifact{
		Name: outputName(path),
		Text: text,
	}
	if s.options.SourceMap {
		artifact.SourceMap = identitySourceMap(path)
	}
	return []ports.EmitArtifact{artifact}
}

// Transpile implements ports.Session: an isolated transform of the given
// text with no cross-file information and diagnostics suppressed.
func (s *session) Transpile(path, text string) ports.TranspileResult {
	result := ports.TranspileResult{Text: blankTypes(path, text)}
	if s.options.SourceMap {
		result.SourceMap = identitySourceMap(path)
	}
	return result
}

// OptionDiagnostics implements ports.Session.
func (s *session) OptionDiagnostics() []domain.Diagnostic {
	return s.optionDiags
}

// GlobalDiagnostics implements ports.Session.
func (s *session) GlobalDiagnostics() []domain.Diagnostic {
	s.ensureProgram()
	return s.globalDiags
}

// SyntacticDiagnostics implements ports.Session.
func (s *session) SyntacticDiagnostics() []domain.Diagnostic {
	s.ensureProgram()
	var diags []domain.Diagnostic
	for _, path := range s.program {
		if state := s.files[path]; state != nil {
			diags = append(diags, state.analysis.syntaxDiags...)
		}
	}
	return diags
}

// SemanticDiagnostics implements ports.Session.
func (s *session) SemanticDiagnostics() []domain.Diagnostic {
	s.ensureProgram()
	return s.semanticDiags
}

func (s *session) inProgram(path string) bool {
	for _, p := range s.program {
		if p == path {
			return true
		}
	}
	return false
}

func outputName(path string) string {
	switch {
	case strings.HasSuffix(path, ".tsx"):
		return strings.TrimSuffix(path, ".tsx") + ".jsx"
	case strings.HasSuffix(path, ".ts"):
		return strings.TrimSuffix(path, ".ts") + ".js"
	}
	return path + ".js"
}
