package worker

import (
	"encoding/json"
	"fmt"

	"go.trai.ch/zerr"

	"github.com/forgeline/tsbridge/internal/adapters/host"
	"github.com/forgeline/tsbridge/internal/core/domain"
	"github.com/forgeline/tsbridge/internal/core/ports"
	"github.com/forgeline/tsbridge/internal/engine/diagnostics"
	"github.com/forgeline/tsbridge/internal/engine/emit"
	"github.com/forgeline/tsbridge/internal/engine/session"
)

// Dispatcher is the single entry point for requests. Handlers run strictly
// sequentially in arrival order on the caller's goroutine; all shared state
// lives on this struct and needs no locking.
type Dispatcher struct {
	registry *session.Registry
	logger   ports.Logger
	cwd      string

	store    *domain.FileStore
	deps     *domain.DepGraph
	ignored  domain.IgnoredDiagnosticSet
	session  *session.CompilationSession
	pipeline *emit.Pipeline
	reporter *diagnostics.Reporter
}

// NewDispatcher creates a dispatcher with empty project state. Init must
// arrive before any other request type.
func NewDispatcher(registry *session.Registry, logger ports.Logger, cwd string) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		logger:   logger,
		cwd:      cwd,
		store:    domain.NewFileStore(),
		deps:     domain.NewDepGraph(),
	}
}

// Dispatch routes one request and produces its correlated response. A
// returned error is fatal to the worker: initialization failures and requests
// arriving before Init have no recovery path. Caller mistakes that leave the
// project state untouched (unknown types, malformed payloads) come back as
// failure responses instead.
func (d *Dispatcher) Dispatch(req Request) (Response, error) {
	if req.Type == TypeInit {
		if err := d.handleInit(req.Payload); err != nil {
			return Response{}, err
		}
		return success(req.Seq, nil), nil
	}

	if d.session == nil {
		return Response{}, zerr.With(zerr.Wrap(domain.ErrSessionNotInitialized, "request arrived before Init"), "requestType", req.Type)
	}

	switch req.Type {
	case TypeUpdateFile:
		var payload UpdateFilePayload
		if err := json.Unmarshal(req.Payload, &payload); err != nil {
			return failure(req.Seq, err), nil
		}
		d.store.Update(payload.FileName, payload.Text)
		return success(req.Seq, nil), nil

	case TypeEmitFile:
		var payload EmitFilePayload
		if err := json.Unmarshal(req.Payload, &payload); err != nil {
			return failure(req.Seq, err), nil
		}
		return success(req.Seq, d.emitFile(payload)), nil

	case TypeDiagnostics:
		return success(req.Seq, d.reporter.Report(d.session.Session())), nil

	case TypeFiles:
		return success(req.Seq, FilesResponse{Files: d.session.ProgramFiles()}), nil

	default:
		return failure(req.Seq, fmt.Errorf("unknown request type %q", req.Type)), nil
	}
}

// Initialized reports whether Init has completed.
func (d *Dispatcher) Initialized() bool {
	return d.session != nil
}

func (d *Dispatcher) handleInit(raw json.RawMessage) error {
	var payload InitPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return zerr.Wrap(err, "failed to decode init payload")
	}

	backend, err := d.registry.Lookup(payload.CompilerInfo.Path)
	if err != nil {
		return err
	}

	options := compilerOptionsFrom(payload.CompilerConfig.Options)
	options.TranspileOnly = options.TranspileOnly ||
		payload.LoaderConfig.TranspileOnly || payload.LoaderConfig.UseTranspileModule

	adapter := host.New(d.store, d.deps, options)
	resident, err := session.New(backend, adapter, d.store, options, payload.CompilerConfig.FileNames)
	if err != nil {
		return err
	}

	d.ignored = domain.NewIgnoredDiagnosticSet(payload.LoaderConfig.IgnoreDiagnostics)
	d.session = resident
	d.pipeline = emit.New(d.store, options.TranspileOnly)
	d.reporter = diagnostics.New(d.store, d.ignored, d.logger, payload.LoaderConfig.ForkCheckerSilent, d.cwd)

	d.logger.Info(fmt.Sprintf("initialized %s backend with %d root files",
		d.session.BackendName(), len(payload.CompilerConfig.FileNames)))
	return nil
}

func (d *Dispatcher) emitFile(payload EmitFilePayload) EmitFileResponse {
	d.store.Update(payload.FileName, payload.Text)

	result := d.pipeline.Emit(d.session.Session(), payload.FileName)
	deps := d.deps.ReachableFrom(payload.FileName)
	if deps == nil {
		deps = []string{}
	}

	return EmitFileResponse{
		EmitResult: EmitResult{Text: result.Text, SourceMap: result.SourceMap},
		Deps:       deps,
	}
}

// compilerOptionsFrom interprets the option keys this worker understands and
// keeps the full raw map for backend-side validation.
func compilerOptionsFrom(raw map[string]any) domain.CompilerOptions {
	options := domain.CompilerOptions{Raw: raw}
	if v, ok := raw["target"].(string); ok {
		options.Target = v
	}
	if v, ok := raw["module"].(string); ok {
		options.Module = v
	}
	if v, ok := raw["sourceMap"].(bool); ok {
		options.SourceMap = v
	}
	if v, ok := raw["declaration"].(bool); ok {
		options.Declaration = v
	}
	if v, ok := raw["transpileOnly"].(bool); ok {
		options.TranspileOnly = v
	}
	if roots, ok := raw["typeRoots"].([]any); ok {
		for _, root := range roots {
			if s, ok := root.(string); ok {
				options.TypeRoots = append(options.TypeRoots, s)
			}
		}
	}
	return options
}

func success(seq int, payload any) Response {
	return Response{Seq: seq, Success: true, Payload: payload}
}

func failure(seq int, err error) Response {
	return Response{Seq: seq, Success: false, Payload: ErrorPayload{Message: err.Error()}}
}
