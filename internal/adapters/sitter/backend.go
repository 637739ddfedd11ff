// Package sitter is the default compiler backend: tree-sitter based
// TypeScript/TSX analysis with a type-blanking emit. It implements
// ports.Backend against the host contract and never reaches around it for
// project state.
package sitter

import (
	"fmt"
	"sort"

	"github.com/forgeline/tsbridge/internal/core/domain"
	"github.com/forgeline/tsbridge/internal/core/ports"
)

// BackendName is the registry name of this backend.
const BackendName = "sitter"

// Diagnostic codes follow the tsc numbering for the cases this backend can
// detect, so ignore lists written against tsc keep working.
const (
	codeUnexpectedToken  = 1128 // Declaration or statement expected.
	codeMissingToken     = 1005 // <token> expected.
	codeCannotFindModule = 2307 // Cannot find module '<name>'.
	codeUnknownOption    = 5023 // Unknown compiler option '<name>'.
	codeFileNotFound     = 6053 // File '<name>' not found.
)

var _ ports.Backend = (*Backend)(nil)

// Backend constructs tree-sitter analysis sessions.
type Backend struct{}

// New creates the backend.
func New() *Backend {
	return &Backend{}
}

// Name implements ports.Backend.
func (b *Backend) Name() string {
	return BackendName
}

// NewSession implements ports.Backend. The session is resident for the
// worker's lifetime; later queries re-analyze only files whose host-reported
// version changed.
func (b *Backend) NewSession(host ports.CompilerHost, options domain.CompilerOptions, rootFiles []string) (ports.Session, error) {
	if len(rootFiles) == 0 {
		return nil, domain.ErrNoRootFiles
	}
	s := &session{
		host:    host,
		options: options,
		roots:   append([]string(nil), rootFiles...),
		files:   make(map[string]*fileState),
	}
	s.optionDiags = validateOptions(options)
	// Analyze eagerly so the initial program (and its dependency edges) exist
	// before the first emit or diagnostics request.
	s.ensureProgram()
	return s, nil
}

// validateOptions produces option-level diagnostics for unrecognized keys.
func validateOptions(options domain.CompilerOptions) []domain.Diagnostic {
	keys := make([]string, 0, len(options.Raw))
	for key := range options.Raw {
		if !domain.KnownOption(key) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	diags := make([]domain.Diagnostic, 0, len(keys))
	for _, key := range keys {
		diags = append(diags, domain.Diagnostic{
			Category: domain.CategoryOptions,
			Code:     codeUnknownOption,
			Message:  fmt.Sprintf("Unknown compiler option '%s'.", key),
		})
	}
	return diags
}
