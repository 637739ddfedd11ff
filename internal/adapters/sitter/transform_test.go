package sitter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlankTypes_Annotations(t *testing.T) {
	in := "const x: number = 1;\nfunction f(a: string): string { return a; }\n"
	out := blankTypes("/p/a.ts", in)

	assert.Len(t, out, len(in), "output must keep every byte offset")
	assert.NotContains(t, out, ": number")
	assert.NotContains(t, out, ": string")
	assert.Contains(t, out, "const x")
	assert.Contains(t, out, "= 1;")
	assert.Contains(t, out, "return a;")
}

func TestBlankTypes_InterfaceAndAlias(t *testing.T) {
	in := strings.Join([]string{
		"interface Shape {",
		"  area(): number;",
		"}",
		"type Alias = Shape | null;",
		"const s = { area: () => 1 };",
		"",
	}, "\n")
	out := blankTypes("/p/a.ts", in)

	assert.Len(t, out, len(in))
	assert.Equal(t, strings.Count(in, "\n"), strings.Count(out, "\n"), "line structure must survive")
	assert.NotContains(t, out, "interface")
	assert.NotContains(t, out, "Alias")
	assert.Contains(t, out, "const s = { area: () => 1 };")
}

func TestBlankTypes_TypeOnlyImport(t *testing.T) {
	in := "import type { Shape } from './shape';\nimport { area } from './area';\n"
	out := blankTypes("/p/a.ts", in)

	assert.Len(t, out, len(in))
	assert.NotContains(t, out, "Shape")
	assert.Contains(t, out, "import { area } from './area';")
}

func TestBlankTypes_AsExpressionKeepsValue(t *testing.T) {
	in := "const v = load() as Config;\n"
	out := blankTypes("/p/a.ts", in)

	assert.Len(t, out, len(in))
	assert.Contains(t, out, "const v = load()")
	assert.NotContains(t, out, "as Config")
}

func TestBlankTypes_NonNullAssertion(t *testing.T) {
	in := "const n = find()!;\n"
	out := blankTypes("/p/a.ts", in)

	assert.Len(t, out, len(in))
	assert.Contains(t, out, "const n = find()")
	assert.NotContains(t, out, "!")
}

func TestBlankTypes_Generics(t *testing.T) {
	in := "function id<T>(v: T): T { return v; }\nconst r = id<number>(1);\n"
	out := blankTypes("/p/a.ts", in)

	assert.Len(t, out, len(in))
	assert.NotContains(t, out, "<T>")
	assert.NotContains(t, out, "<number>")
	assert.Contains(t, out, "return v;")
	assert.Contains(t, out, "(1);")
}

func TestBlankTypes_UnparseableContentPassesThrough(t *testing.T) {
	in := "}}}} not typescript at all {{{{"
	out := blankTypes("/p/a.ts", in)
	assert.Len(t, out, len(in))
}

func TestIdentitySourceMap(t *testing.T) {
	m := identitySourceMap("/p/a.ts")
	assert.Contains(t, m, `"version":3`)
	assert.Contains(t, m, `"file":"a.js"`)
	assert.Contains(t, m, `"sources":["a.ts"]`)
}
