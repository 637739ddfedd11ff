package sitter

import (
	"encoding/json"
	"path/filepath"

	ts "github.com/smacker/go-tree-sitter"
)

// byteRange is a half-open [start, end) span of source bytes.
type byteRange struct {
	start uint32
	end   uint32
}

// wholeBlankTypes are node kinds erased in their entirety: they carry no
// runtime behavior.
var wholeBlankTypes = map[string]bool{
	"type_annotation":           true,
	"type_alias_declaration":    true,
	"interface_declaration":     true,
	"ambient_declaration":       true,
	"type_parameters":           true,
	"type_arguments":            true,
	"implements_clause":         true,
	"accessibility_modifier":    true,
	"override_modifier":         true,
	"function_signature":        true,
	"method_signature":          true,
	"abstract_method_signature": true,
	"index_signature":           true,
}

// suffixBlankTypes are expressions whose trailing type syntax is erased while
// the wrapped expression (the first child) stays.
var suffixBlankTypes = map[string]bool{
	"as_expression":        true,
	"satisfies_expression": true,
	"non_null_expression":  true,
}

// blankTypes erases TypeScript-only syntax from text by overwriting it with
// spaces, leaving every remaining byte at its original offset. Output length
// and line structure are identical to the input, so positions survive the
// transform and an identity source map is sufficient.
//
// Content the parser cannot make sense of passes through unchanged; this path
// never reports diagnostics.
func blankTypes(path, text string) string {
	tree, err := parse(path, text)
	if err != nil {
		return text
	}
	defer tree.Close()

	var ranges []byteRange
	collectTypeRanges(tree.RootNode(), &ranges)

	out := []byte(text)
	for _, r := range ranges {
		for i := r.start; i < r.end && int(i) < len(out); i++ {
			if out[i] != '\n' && out[i] != '\r' {
				out[i] = ' '
			}
		}
	}
	return string(out)
}

func collectTypeRanges(n *ts.Node, ranges *[]byteRange) {
	if n == nil {
		return
	}
	kind := n.Type()

	switch {
	case wholeBlankTypes[kind]:
		*ranges = append(*ranges, byteRange{n.StartByte(), n.EndByte()})
		return

	case suffixBlankTypes[kind]:
		// Keep the wrapped expression, erase the operator and the type.
		if first := n.NamedChild(0); first != nil {
			*ranges = append(*ranges, byteRange{first.EndByte(), n.EndByte()})
			collectTypeRanges(first, ranges)
		}
		return

	case kind == "import_statement" || kind == "export_statement":
		if isTypeOnlyStatement(n) {
			*ranges = append(*ranges, byteRange{n.StartByte(), n.EndByte()})
			return
		}

	case kind == "abstract" || kind == "readonly":
		*ranges = append(*ranges, byteRange{n.StartByte(), n.EndByte()})
		return

	case kind == "?":
		if parent := n.Parent(); parent != nil && optionalMarkerParents[parent.Type()] {
			*ranges = append(*ranges, byteRange{n.StartByte(), n.EndByte()})
			return
		}
	}

	for i := 0; i < int(n.ChildCount()); i++ {
		collectTypeRanges(n.Child(i), ranges)
	}
}

// optionalMarkerParents are contexts where a '?' is a type-level optionality
// marker rather than a ternary.
var optionalMarkerParents = map[string]bool{
	"optional_parameter":      true,
	"public_field_definition": true,
}

// isTypeOnlyStatement reports whether an import/export statement is erased
// entirely: `import type`/`export type` forms, and export statements whose
// declaration is itself type-only.
func isTypeOnlyStatement(n *ts.Node) bool {
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child == nil {
			continue
		}
		if child.Type() == "type" {
			return true
		}
		if child.Type() == "interface_declaration" || child.Type() == "type_alias_declaration" {
			return true
		}
	}
	return false
}

type sourceMap struct {
	Version  int      `json:"version"`
	File     string   `json:"file"`
	Sources  []string `json:"sources"`
	Names    []string `json:"names"`
	Mappings string   `json:"mappings"`
}

// identitySourceMap is all the mapping a position-preserving transform needs.
func identitySourceMap(path string) string {
	data, _ := json.Marshal(sourceMap{
		Version: 3,
		File:    filepath.Base(outputName(path)),
		Sources: []string{filepath.Base(path)},
		Names:   []string{},
	})
	return string(data)
}
