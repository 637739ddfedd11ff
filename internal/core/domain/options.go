package domain

// CompilerOptions are the compilation settings handed to the backend at
// session construction. Raw keeps the caller's full option map so backends
// can validate keys this worker does not interpret itself.
type CompilerOptions struct {
	Target        string
	Module        string
	TypeRoots     []string
	SourceMap     bool
	Declaration   bool
	TranspileOnly bool

	Raw map[string]any
}

// knownOptionKeys are the option names the default backend understands.
// Anything else in Raw yields an option-level diagnostic.
var knownOptionKeys = map[string]bool{
	"target":           true,
	"module":           true,
	"typeRoots":        true,
	"sourceMap":        true,
	"declaration":      true,
	"transpileOnly":    true,
	"strict":           true,
	"jsx":              true,
	"lib":              true,
	"outDir":           true,
	"rootDir":          true,
	"baseUrl":          true,
	"moduleResolution": true,
	"esModuleInterop":  true,
	"skipLibCheck":     true,
}

// KnownOption reports whether key is a recognized compiler option name.
func KnownOption(key string) bool {
	return knownOptionKeys[key]
}
