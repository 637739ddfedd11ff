// Package diagnostics collects, filters, and renders the backend's
// diagnostic categories.
package diagnostics

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/forgeline/tsbridge/internal/core/domain"
	"github.com/forgeline/tsbridge/internal/core/ports"
)

// Record is one reported diagnostic in structured form. Line and Character
// are zero-based and only meaningful when FileName is set.
type Record struct {
	Category  string `json:"category"`
	Code      int    `json:"code"`
	FileName  string `json:"fileName,omitempty"`
	Start     int    `json:"start"`
	Message   string `json:"message"`
	Pretty    string `json:"pretty"`
	Line      int    `json:"line"`
	Character int    `json:"character"`
}

// Reporter assembles diagnostic reports from a session's current program
// state.
type Reporter struct {
	store   *domain.FileStore
	ignored domain.IgnoredDiagnosticSet
	logger  ports.Logger
	silent  bool
	cwd     string
}

// New creates a Reporter. cwd is the base for relative file names in
// reports; silent suppresses the summary log line.
func New(store *domain.FileStore, ignored domain.IgnoredDiagnosticSet, logger ports.Logger, silent bool, cwd string) *Reporter {
	return &Reporter{store: store, ignored: ignored, logger: logger, silent: silent, cwd: cwd}
}

// Report collects the four diagnostic categories in order (option-level,
// global, syntactic, semantic), drops ignored codes, and renders the rest.
// Ignored diagnostics are still computed by the backend; filtering is purely
// a display policy.
func (r *Reporter) Report(session ports.Session) []Record {
	var all []domain.Diagnostic
	all = append(all, session.OptionDiagnostics()...)
	all = append(all, session.GlobalDiagnostics()...)
	all = append(all, session.SyntacticDiagnostics()...)
	all = append(all, session.SemanticDiagnostics()...)

	records := make([]Record, 0, len(all))
	for _, diag := range all {
		if r.ignored.Ignored(diag.Code) {
			continue
		}
		records = append(records, r.render(diag))
	}

	if !r.silent {
		if len(records) == 0 {
			r.logger.Info("no errors found")
		} else {
			r.logger.Info(fmt.Sprintf("found %d errors", len(records)))
		}
	}
	return records
}

func (r *Reporter) render(diag domain.Diagnostic) Record {
	record := Record{
		Category: string(diag.Category),
		Code:     diag.Code,
		Start:    diag.Start,
		Message:  diag.Message,
	}

	if diag.File == "" {
		record.Pretty = fmt.Sprintf("TS%d: %s", diag.Code, diag.Message)
		return record
	}

	record.FileName = r.relative(diag.File)
	record.Line, record.Character = positionOf(r.fileText(diag.File), diag.Start)
	record.Pretty = fmt.Sprintf("%s(%d,%d): TS%d: %s",
		record.FileName, record.Line+1, record.Character+1, diag.Code, diag.Message)
	return record
}

func (r *Reporter) relative(path string) string {
	if rel, err := filepath.Rel(r.cwd, path); err == nil && !strings.HasPrefix(rel, "..") {
		return rel
	}
	return path
}

func (r *Reporter) fileText(path string) string {
	if f := r.store.Get(path); f != nil {
		return f.Text
	}
	return ""
}

// positionOf converts a byte offset into a zero-based line/character pair.
// The character counts runes, not bytes, so columns stay correct on lines
// with non-ASCII text.
func positionOf(text string, offset int) (line, character int) {
	if offset > len(text) {
		offset = len(text)
	}
	for _, r := range text[:offset] {
		if r == '\n' {
			line++
			character = 0
		} else {
			character++
		}
	}
	return line, character
}
