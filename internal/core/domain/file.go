// Package domain contains the core project model: versioned source files,
// the dependency edge graph, compiler settings, and diagnostics.
package domain

import "github.com/cespare/xxhash/v2"

// Snapshot is an immutable handle to a file's content at one version.
// Backends compare snapshots (cheaply, via the content hash) to decide
// whether a file needs re-analysis.
type Snapshot struct {
	Text    string
	Version int
	Hash    uint64
}

// SourceFile is one tracked file. Version starts at 0 when the file is first
// seen and strictly increases on every content change.
type SourceFile struct {
	Path    string
	Text    string
	Version int
	hash    uint64
}

// NewSourceFile creates a SourceFile at version 0.
func NewSourceFile(path, text string) *SourceFile {
	return &SourceFile{
		Path: path,
		Text: text,
		hash: xxhash.Sum64String(text),
	}
}

// Snapshot returns the immutable content handle for the current version.
func (f *SourceFile) Snapshot() Snapshot {
	return Snapshot{Text: f.Text, Version: f.Version, Hash: f.hash}
}

// sameContent reports whether text is byte-identical to the current content.
// The hash comparison rejects almost all mismatches without touching the text.
func (f *SourceFile) sameContent(text string) bool {
	return f.hash == xxhash.Sum64String(text) && f.Text == text
}

// replace installs new content and bumps the file version.
func (f *SourceFile) replace(text string) {
	f.Text = text
	f.hash = xxhash.Sum64String(text)
	f.Version++
}
