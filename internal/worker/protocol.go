// Package worker implements the request/response protocol and the dispatcher
// that serializes all operations against the shared project state.
package worker

import (
	"encoding/json"
)

// Request types accepted by the dispatcher.
const (
	TypeInit        = "Init"
	TypeUpdateFile  = "UpdateFile"
	TypeEmitFile    = "EmitFile"
	TypeDiagnostics = "Diagnostics"
	TypeFiles       = "Files"
)

// Request is the inbound message envelope. Payload stays raw until the
// handler for Type decodes it.
type Request struct {
	Seq     int             `json:"seq"`
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Response is the outbound envelope. Seq echoes the originating request so
// the caller can correlate replies.
type Response struct {
	Seq     int  `json:"seq"`
	Success bool `json:"success"`
	Payload any  `json:"payload"`
}

// CompilerInfo names the backend serving this worker. Path may be a bare
// registry name or a path whose last element is one.
type CompilerInfo struct {
	Path    string `json:"path"`
	Version string `json:"version,omitempty"`
}

// LoaderConfig carries the caller-side loader settings the worker honors.
type LoaderConfig struct {
	Instance           string `json:"instance,omitempty"`
	ForkCheckerSilent  bool   `json:"forkCheckerSilent,omitempty"`
	IgnoreDiagnostics  []int  `json:"ignoreDiagnostics,omitempty"`
	UseTranspileModule bool   `json:"useTranspileModule,omitempty"`
	TranspileOnly      bool   `json:"transpileOnly,omitempty"`
}

// CompilerConfig is the resolved per-project compilation configuration.
type CompilerConfig struct {
	FileNames []string       `json:"fileNames"`
	Options   map[string]any `json:"options"`
}

// InitPayload seeds the worker: backend selection, loader settings, compiler
// configuration, and the caller's opaque build options.
type InitPayload struct {
	CompilerInfo   CompilerInfo    `json:"compilerInfo"`
	LoaderConfig   LoaderConfig    `json:"loaderConfig"`
	CompilerConfig CompilerConfig  `json:"compilerConfig"`
	WebpackOptions json.RawMessage `json:"webpackOptions,omitempty"`
}

// UpdateFilePayload replaces one file's tracked content.
type UpdateFilePayload struct {
	FileName string `json:"fileName"`
	Text     string `json:"text"`
}

// EmitFilePayload updates one file's content and requests its output.
type EmitFilePayload struct {
	FileName string `json:"fileName"`
	Text     string `json:"text"`
}

// EmitResult is the produced output for one file.
type EmitResult struct {
	Text      string `json:"text"`
	SourceMap string `json:"sourceMap,omitempty"`
}

// EmitFileResponse is the EmitFile success payload: the output plus every
// file transitively reachable from the emitted one.
type EmitFileResponse struct {
	EmitResult EmitResult `json:"emitResult"`
	Deps       []string   `json:"deps"`
}

// FilesResponse lists the paths currently part of the backend's program.
type FilesResponse struct {
	Files []string `json:"files"`
}

// ErrorPayload is the payload of a failure response.
type ErrorPayload struct {
	Message string `json:"message"`
}
