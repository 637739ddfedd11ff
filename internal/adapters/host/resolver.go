package host

import (
	"path/filepath"
	"strings"

	"github.com/forgeline/tsbridge/internal/core/ports"
)

// moduleExtensions is the probe order for extensionless specifiers.
var moduleExtensions = []string{".ts", ".tsx", ".d.ts"}

// ResolveModuleNames implements ports.CompilerHost. Each successfully
// resolved target is recorded as a dependency edge from containingFile.
// Unresolved names are skipped silently: no edge, no error.
func (a *Adapter) ResolveModuleNames(containingFile string, names []string) []ports.ResolvedModule {
	resolved := make([]ports.ResolvedModule, len(names))
	for i, name := range names {
		target, ok := a.resolveModule(containingFile, name)
		if !ok {
			continue
		}
		resolved[i] = ports.ResolvedModule{ResolvedFileName: target, Resolved: true}
		a.deps.Add(containingFile, target)
	}
	return resolved
}

// ResolveTypeReferenceDirectives implements ports.CompilerHost with the same
// edge-recording side effect as module resolution.
func (a *Adapter) ResolveTypeReferenceDirectives(containingFile string, names []string) []ports.ResolvedModule {
	resolved := make([]ports.ResolvedModule, len(names))
	for i, name := range names {
		target, ok := a.resolveTypeReference(name)
		if !ok {
			continue
		}
		resolved[i] = ports.ResolvedModule{ResolvedFileName: target, Resolved: true}
		a.deps.Add(containingFile, target)
	}
	return resolved
}

// resolveModule does Node-style relative resolution: the specifier as-is when
// it already names a source file, then extension probing, then index files.
// Bare specifiers (npm packages, node builtins) are outside the project and
// never resolve here.
func (a *Adapter) resolveModule(containingFile, name string) (string, bool) {
	if !strings.HasPrefix(name, "./") && !strings.HasPrefix(name, "../") {
		return "", false
	}

	base := filepath.Clean(filepath.Join(filepath.Dir(containingFile), name))

	if hasSourceExtension(base) && a.FileExists(base) {
		return base, true
	}
	for _, ext := range moduleExtensions {
		if candidate := base + ext; a.FileExists(candidate) {
			return candidate, true
		}
	}
	for _, ext := range moduleExtensions {
		if candidate := filepath.Join(base, "index"+ext); a.FileExists(candidate) {
			return candidate, true
		}
	}
	return "", false
}

// resolveTypeReference probes the configured type roots for a declaration
// package: <root>/<name>/index.d.ts, then <root>/<name>.d.ts.
func (a *Adapter) resolveTypeReference(name string) (string, bool) {
	for _, root := range a.options.TypeRoots {
		if candidate := filepath.Join(root, name, "index.d.ts"); a.FileExists(candidate) {
			return candidate, true
		}
		if candidate := filepath.Join(root, name+".d.ts"); a.FileExists(candidate) {
			return candidate, true
		}
	}
	return "", false
}

func hasSourceExtension(path string) bool {
	for _, ext := range moduleExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}
