// Package watcher feeds filesystem changes into the worker as UpdateFile
// requests, so watch mode reuses the exact request path the parent process
// uses. Events are debounced per burst and serialized through the same inbox
// as protocol requests, preserving the single-writer model.
package watcher

import (
	"context"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/zerr"

	"github.com/forgeline/tsbridge/internal/adapters/config"
	"github.com/forgeline/tsbridge/internal/core/ports"
	"github.com/forgeline/tsbridge/internal/worker"
)

var sourceExtensions = []string{".ts", ".tsx"}

// Watcher converts debounced file events under the configured roots into
// UpdateFile requests.
type Watcher struct {
	roots    []string
	debounce time.Duration
	logger   ports.Logger
}

// New creates a watcher from the worker configuration.
func New(cfg config.WatchConfig, logger ports.Logger) *Watcher {
	return &Watcher{roots: cfg.Roots, debounce: cfg.Debounce, logger: logger}
}

// Run watches until ctx is canceled, sending one UpdateFile request per
// changed source file onto out after the debounce window closes. Requests
// carry no sequence number; no response is expected for them.
func (w *Watcher) Run(ctx context.Context, out chan<- worker.Request) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, "failed to create filesystem watcher")
	}
	defer fw.Close() //nolint:errcheck

	for _, root := range w.roots {
		if err := addTree(fw, root); err != nil {
			return err
		}
	}

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	pending := make(map[string]struct{})

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := addTree(fw, event.Name); err != nil {
						w.logger.Warn("failed to watch new directory " + event.Name)
					}
					continue
				}
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 || !isSourceFile(event.Name) {
				continue
			}
			pending[event.Name] = struct{}{}
			timer.Reset(w.debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error(zerr.Wrap(err, "filesystem watcher error"))

		case <-timer.C:
			if err := w.flush(ctx, pending, out); err != nil {
				return err
			}
			pending = make(map[string]struct{})
		}
	}
}

func (w *Watcher) flush(ctx context.Context, pending map[string]struct{}, out chan<- worker.Request) error {
	paths := make([]string, 0, len(pending))
	for path := range pending {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		text, err := os.ReadFile(path) //nolint:gosec // paths come from watched roots
		if err != nil {
			continue
		}
		payload, err := json.Marshal(worker.UpdateFilePayload{FileName: path, Text: string(text)})
		if err != nil {
			return zerr.Wrap(err, "failed to encode update for "+path)
		}
		select {
		case out <- worker.Request{Type: worker.TypeUpdateFile, Payload: payload}:
		case <-ctx.Done():
			return nil
		}
	}
	return nil
}

func addTree(fw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil //nolint:nilerr // unreadable subtrees are skipped
		}
		if err := fw.Add(path); err != nil {
			return zerr.Wrap(err, "failed to watch "+path)
		}
		return nil
	})
}

func isSourceFile(path string) bool {
	for _, ext := range sourceExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}
