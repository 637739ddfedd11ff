package session

import (
	"go.trai.ch/zerr"

	"github.com/forgeline/tsbridge/internal/core/domain"
	"github.com/forgeline/tsbridge/internal/core/ports"
)

// CompilationSession wraps the backend's resident session. It is constructed
// exactly once, at Init, and lives for the worker's lifetime; a construction
// failure is fatal to the worker.
type CompilationSession struct {
	backend ports.Backend
	session ports.Session
}

// New constructs the resident session and registers every file the backend
// reports as part of the initial program into the store, so later updates to
// those files are tracked and versioned.
func New(
	backend ports.Backend,
	host ports.CompilerHost,
	store *domain.FileStore,
	options domain.CompilerOptions,
	rootFiles []string,
) (*CompilationSession, error) {
	for _, path := range rootFiles {
		store.EnsureLoaded(path)
	}

	inner, err := backend.NewSession(host, options, rootFiles)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to construct backend session")
	}

	for _, path := range inner.ProgramFiles() {
		store.EnsureLoaded(path)
	}

	return &CompilationSession{backend: backend, session: inner}, nil
}

// BackendName reports which backend serves this session.
func (c *CompilationSession) BackendName() string {
	return c.backend.Name()
}

// Session exposes the backend session for queries.
func (c *CompilationSession) Session() ports.Session {
	return c.session
}

// ProgramFiles lists the files currently part of the analyzed program.
func (c *CompilationSession) ProgramFiles() []string {
	return c.session.ProgramFiles()
}
