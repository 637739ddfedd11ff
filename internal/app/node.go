package app

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/zerr"

	"github.com/forgeline/tsbridge/internal/adapters/config" //nolint:depguard // Wired in app layer
	"github.com/forgeline/tsbridge/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"github.com/forgeline/tsbridge/internal/adapters/sitter" //nolint:depguard // Wired in app layer
	"github.com/forgeline/tsbridge/internal/core/ports"
	"github.com/forgeline/tsbridge/internal/engine/session"
	"github.com/forgeline/tsbridge/internal/worker"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			cfg, err := graft.Dep[config.Config](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			cwd, err := os.Getwd()
			if err != nil {
				return nil, zerr.Wrap(err, "failed to resolve working directory")
			}

			registry := session.NewRegistry(sitter.New())
			dispatcher := worker.NewDispatcher(registry, log, cwd)
			return New(dispatcher, log, cfg), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			cfg, err := graft.Dep[config.Config](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: application, Logger: log, Config: cfg}, nil
		},
	})
}
