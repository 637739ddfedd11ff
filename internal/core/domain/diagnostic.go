package domain

// DiagnosticCategory names the collection a diagnostic came from. Reports
// concatenate the categories in the order listed here.
type DiagnosticCategory string

const (
	CategoryOptions   DiagnosticCategory = "options"
	CategoryGlobal    DiagnosticCategory = "global"
	CategorySyntactic DiagnosticCategory = "syntactic"
	CategorySemantic  DiagnosticCategory = "semantic"
)

// Diagnostic is one problem reported by the backend. File is empty for
// diagnostics not attached to a file (for example option-level problems);
// Start is a byte offset into the file's content.
type Diagnostic struct {
	Category DiagnosticCategory
	Code     int
	File     string
	Start    int
	Message  string
}

// IgnoredDiagnosticSet filters diagnostics by code at report time. Ignored
// diagnostics are still computed by the backend; this is display policy only.
type IgnoredDiagnosticSet map[int]bool

// NewIgnoredDiagnosticSet builds the set from configured codes.
func NewIgnoredDiagnosticSet(codes []int) IgnoredDiagnosticSet {
	set := make(IgnoredDiagnosticSet, len(codes))
	for _, code := range codes {
		set[code] = true
	}
	return set
}

// Ignored reports whether code is filtered.
func (s IgnoredDiagnosticSet) Ignored(code int) bool {
	return s[code]
}
