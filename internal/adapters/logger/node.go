package logger

import (
	"context"

	"github.com/forgeline/tsbridge/internal/adapters/config"
	"github.com/forgeline/tsbridge/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the logger Graft node.
const NodeID graft.ID = "adapter.logger"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.Logger, error) {
			cfg, err := graft.Dep[config.Config](ctx)
			if err != nil {
				return nil, err
			}
			return New(cfg.LogLevel), nil
		},
	})
}
