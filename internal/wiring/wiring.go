// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/forgeline/tsbridge/internal/adapters/config"
	_ "github.com/forgeline/tsbridge/internal/adapters/logger"
	// Register the app node.
	_ "github.com/forgeline/tsbridge/internal/app"
)
