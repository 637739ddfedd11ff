package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownBackend is returned when no backend is registered under the requested name.
	ErrUnknownBackend = zerr.New("unknown compiler backend")

	// ErrSessionNotInitialized is returned when a request needs a compilation
	// session but Init has not been handled yet.
	ErrSessionNotInitialized = zerr.New("compilation session not initialized")

	// ErrNoRootFiles is returned when Init carries an empty file list.
	ErrNoRootFiles = zerr.New("no root files configured")
)
