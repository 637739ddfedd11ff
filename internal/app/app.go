// Package app implements the application layer for tsbridge.
package app

import (
	"context"
	"errors"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/forgeline/tsbridge/internal/adapters/config"
	"github.com/forgeline/tsbridge/internal/adapters/ipc"
	"github.com/forgeline/tsbridge/internal/adapters/watcher"
	"github.com/forgeline/tsbridge/internal/core/ports"
	"github.com/forgeline/tsbridge/internal/worker"
)

// inboxItem is one unit of work for the dispatch loop. Watcher-driven items
// expect no response; protocol items always get one.
type inboxItem struct {
	req     worker.Request
	respond bool
}

// App couples the protocol codec and the optional filesystem watcher to the
// dispatcher. All requests, whatever their source, funnel through one inbox
// and are handled strictly one at a time.
type App struct {
	dispatcher *worker.Dispatcher
	logger     ports.Logger
	cfg        config.Config
}

// New creates the application.
func New(dispatcher *worker.Dispatcher, logger ports.Logger, cfg config.Config) *App {
	return &App{dispatcher: dispatcher, logger: logger, cfg: cfg}
}

// Serve runs the worker over the given channel until it closes, the context
// is canceled, or a fatal dispatch error occurs. in carries requests, out
// carries responses; with stdio these are the parent process's pipe ends.
func (a *App) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	codec := ipc.NewCodec(in, out)
	inbox := make(chan inboxItem)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		// A closed request channel is a normal shutdown; cancel the
		// siblings instead of failing the group.
		defer cancel()
		for {
			req, err := codec.Read()
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return err
			}
			select {
			case inbox <- inboxItem{req: req, respond: true}:
			case <-gctx.Done():
				return nil
			}
		}
	})

	if a.cfg.Watch.Enabled {
		w := watcher.New(a.cfg.Watch, a.logger)
		updates := make(chan worker.Request)
		g.Go(func() error {
			return w.Run(gctx, updates)
		})
		g.Go(func() error {
			for {
				select {
				case req := <-updates:
					select {
					case inbox <- inboxItem{req: req}:
					case <-gctx.Done():
						return nil
					}
				case <-gctx.Done():
					return nil
				}
			}
		})
	}

	g.Go(func() error {
		for {
			select {
			case item := <-inbox:
				// A file save during startup can race the parent's Init.
				// Watcher items carry no response and only refresh content
				// the Init seed will load anyway, so they are safe to drop.
				if !item.respond && !a.dispatcher.Initialized() {
					continue
				}
				resp, err := a.dispatcher.Dispatch(item.req)
				if err != nil {
					return err
				}
				if !item.respond {
					continue
				}
				if err := codec.Write(resp); err != nil {
					return err
				}
			case <-gctx.Done():
				return nil
			}
		}
	})

	return g.Wait()
}
