package sitter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/forgeline/tsbridge/internal/adapters/host"
	"github.com/forgeline/tsbridge/internal/adapters/sitter"
	"github.com/forgeline/tsbridge/internal/core/domain"
	"github.com/forgeline/tsbridge/internal/core/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store *domain.FileStore
	deps  *domain.DepGraph
	dir   string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return &fixture{
		store: domain.NewFileStore(),
		deps:  domain.NewDepGraph(),
		dir:   t.TempDir(),
	}
}

func (f *fixture) write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(f.dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func (f *fixture) session(t *testing.T, options domain.CompilerOptions, roots ...string) ports.Session {
	t.Helper()
	adapter := host.New(f.store, f.deps, options)
	session, err := sitter.New().NewSession(adapter, options, roots)
	require.NoError(t, err)
	return session
}

func TestSession_ProgramFollowsImports(t *testing.T) {
	f := newFixture(t)
	b := f.write(t, "b.ts", "export const b = 1;\n")
	a := f.write(t, "a.ts", "import { b } from './b';\nexport const a = b;\n")

	session := f.session(t, domain.CompilerOptions{}, a)

	assert.Equal(t, []string{a, b}, session.ProgramFiles())
	assert.Equal(t, []string{b}, f.deps.Direct(a))
}

func TestSession_UnchangedProjectIsNotRewalked(t *testing.T) {
	f := newFixture(t)
	b := f.write(t, "b.ts", "export const b = 1;\n")
	a := f.write(t, "a.ts", "import { b } from './b';\nexport const a: number = b;\n")

	session := f.session(t, domain.CompilerOptions{}, a)

	// Construction lazily loads b into the store, moving the project
	// version mid-walk. Repeated queries on the unchanged project must not
	// resolve again: a second walk would append a duplicate edge.
	for i := 0; i < 3; i++ {
		require.Equal(t, []string{a, b}, session.ProgramFiles())
		require.NotEmpty(t, session.EmitOutput(a))
		assert.Equal(t, []string{b}, f.deps.Direct(a))
	}
}

func TestSession_IncrementalReanalysis(t *testing.T) {
	f := newFixture(t)
	a := f.write(t, "a.ts", "export const a = 1;\n")
	c := f.write(t, "c.ts", "export const c = 1;\n")

	session := f.session(t, domain.CompilerOptions{}, a)
	require.Equal(t, []string{a}, session.ProgramFiles())

	// A content change grows the program on the next query.
	f.store.Update(a, "import { c } from './c';\nexport const a = c;\n")
	assert.Equal(t, []string{a, c}, session.ProgramFiles())
}

func TestSession_SemanticDiagnosticForMissingRelativeImport(t *testing.T) {
	f := newFixture(t)
	a := f.write(t, "a.ts", "import { gone } from './gone';\n")

	session := f.session(t, domain.CompilerOptions{}, a)

	diags := session.SemanticDiagnostics()
	require.Len(t, diags, 1)
	assert.Equal(t, domain.CategorySemantic, diags[0].Category)
	assert.Equal(t, 2307, diags[0].Code)
	assert.Equal(t, a, diags[0].File)
	assert.Contains(t, diags[0].Message, "./gone")

	// Bare specifiers are not project files and produce no diagnostic.
	f.store.Update(a, "import * as react from 'react';\n")
	assert.Empty(t, session.SemanticDiagnostics())
}

func TestSession_SyntacticDiagnostics(t *testing.T) {
	f := newFixture(t)
	a := f.write(t, "a.ts", "function broken( {\n")

	session := f.session(t, domain.CompilerOptions{}, a)

	diags := session.SyntacticDiagnostics()
	require.NotEmpty(t, diags)
	assert.Equal(t, domain.CategorySyntactic, diags[0].Category)
	assert.Equal(t, a, diags[0].File)
}

func TestSession_GlobalDiagnosticForMissingRoot(t *testing.T) {
	f := newFixture(t)
	missing := filepath.Join(f.dir, "missing.ts")

	session := f.session(t, domain.CompilerOptions{}, missing)

	diags := session.GlobalDiagnostics()
	require.Len(t, diags, 1)
	assert.Equal(t, domain.CategoryGlobal, diags[0].Category)
	assert.Equal(t, 6053, diags[0].Code)
	assert.Empty(t, diags[0].File)
}

func TestSession_OptionDiagnostics(t *testing.T) {
	f := newFixture(t)
	a := f.write(t, "a.ts", "export const a = 1;\n")

	options := domain.CompilerOptions{Raw: map[string]any{
		"target":       "es2020",
		"experimental": true,
	}}
	session := f.session(t, options, a)

	diags := session.OptionDiagnostics()
	require.Len(t, diags, 1)
	assert.Equal(t, domain.CategoryOptions, diags[0].Category)
	assert.Equal(t, 5023, diags[0].Code)
	assert.Contains(t, diags[0].Message, "experimental")
}

func TestSession_EmitOutput(t *testing.T) {
	f := newFixture(t)
	a := f.write(t, "a.ts", "export const a: number = 1;\n")

	session := f.session(t, domain.CompilerOptions{SourceMap: true}, a)

	artifacts := session.EmitOutput(a)
	require.Len(t, artifacts, 1)
	assert.Equal(t, filepath.Join(f.dir, "a.js"), artifacts[0].Name)
	assert.NotContains(t, artifacts[0].Text, ": number")
	assert.Contains(t, artifacts[0].Text, "export const a")
	assert.Contains(t, artifacts[0].SourceMap, `"version":3`)
}

func TestSession_EmitOutput_DeclarationFileIsEmpty(t *testing.T) {
	f := newFixture(t)
	d := f.write(t, "a.d.ts", "declare const a: number;\n")

	session := f.session(t, domain.CompilerOptions{}, d)

	assert.Empty(t, session.EmitOutput(d))
}

func TestSession_TypeReferenceDirectives(t *testing.T) {
	f := newFixture(t)
	node := f.write(t, "types/node/index.d.ts", "declare const process: any;\n")
	a := f.write(t, "a.ts", "/// <reference types=\"node\" />\nexport const a = 1;\n")

	options := domain.CompilerOptions{TypeRoots: []string{filepath.Join(f.dir, "types")}}
	session := f.session(t, options, a)

	assert.Equal(t, []string{a, node}, session.ProgramFiles())
	assert.Equal(t, []string{node}, f.deps.Direct(a))
}

func TestNewSession_NoRoots(t *testing.T) {
	f := newFixture(t)
	adapter := host.New(f.store, f.deps, domain.CompilerOptions{})
	_, err := sitter.New().NewSession(adapter, domain.CompilerOptions{}, nil)
	require.ErrorIs(t, err, domain.ErrNoRootFiles)
}
