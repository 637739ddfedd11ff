package sitter

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	ts "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/forgeline/tsbridge/internal/core/domain"
)

// importRef is one import specifier found in a file, with the byte offset of
// its source string for diagnostics.
type importRef struct {
	specifier string
	offset    int
}

// fileAnalysis is the per-file derived state cached by version.
type fileAnalysis struct {
	imports     []importRef
	typeRefs    []string
	syntaxDiags []domain.Diagnostic
}

func languageFor(path string) *ts.Language {
	if strings.HasSuffix(path, ".tsx") {
		return tsx.GetLanguage()
	}
	return typescript.GetLanguage()
}

func parse(path, text string) (*ts.Tree, error) {
	parser := ts.NewParser()
	parser.SetLanguage(languageFor(path))
	return parser.ParseCtx(context.Background(), nil, []byte(text))
}

// typeRefPattern matches /// <reference types="name" /> directives, which
// tree-sitter surfaces only as comment nodes.
var typeRefPattern = regexp.MustCompile(`<reference\s+types="([^"]+)"`)

// analyzeFile parses text and extracts imports, type reference directives,
// and syntactic diagnostics.
func analyzeFile(path, text string) fileAnalysis {
	tree, err := parse(path, text)
	if err != nil {
		// The parser could not tokenize the content at all; report the whole
		// file as one syntactic diagnostic.
		return fileAnalysis{syntaxDiags: []domain.Diagnostic{{
			Category: domain.CategorySyntactic,
			Code:     codeUnexpectedToken,
			File:     path,
			Message:  "File could not be parsed.",
		}}}
	}
	defer tree.Close()

	source := []byte(text)
	var analysis fileAnalysis

	var walk func(n *ts.Node)
	walk = func(n *ts.Node) {
		if n == nil {
			return
		}
		switch {
		case n.Type() == "import_statement" || n.Type() == "export_statement":
			if ref, ok := importSource(n, source); ok {
				analysis.imports = append(analysis.imports, ref)
			}
		case n.Type() == "comment":
			if m := typeRefPattern.FindStringSubmatch(n.Content(source)); m != nil {
				analysis.typeRefs = append(analysis.typeRefs, m[1])
			}
		case n.IsMissing():
			analysis.syntaxDiags = append(analysis.syntaxDiags, domain.Diagnostic{
				Category: domain.CategorySyntactic,
				Code:     codeMissingToken,
				File:     path,
				Start:    int(n.StartByte()),
				Message:  fmt.Sprintf("'%s' expected.", n.Type()),
			})
		case n.IsError():
			analysis.syntaxDiags = append(analysis.syntaxDiags, domain.Diagnostic{
				Category: domain.CategorySyntactic,
				Code:     codeUnexpectedToken,
				File:     path,
				Start:    int(n.StartByte()),
				Message:  "Declaration or statement expected.",
			})
		}
		for i := 0; i < int(n.ChildCount()); i++ {
			walk(n.Child(i))
		}
	}
	walk(tree.RootNode())

	return analysis
}

// importSource finds the module specifier string of an import or export
// statement. Export statements without a source clause have none.
func importSource(n *ts.Node, source []byte) (importRef, bool) {
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child == nil || child.Type() != "string" {
			continue
		}
		specifier := strings.Trim(child.Content(source), "'\"")
		if specifier == "" {
			return importRef{}, false
		}
		return importRef{specifier: specifier, offset: int(child.StartByte())}, true
	}
	return importRef{}, false
}
