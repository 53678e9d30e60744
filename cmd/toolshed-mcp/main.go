// Command toolshed-mcp serves the tool catalog over the Model Context
// Protocol on stdio. Expected to be launched by an agent, not a human; all
// logging goes to stderr because stdout carries the protocol.
package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Cyclone1070/toolshed/internal/adapter"
	"github.com/Cyclone1070/toolshed/internal/config"
	"github.com/Cyclone1070/toolshed/internal/dispatch"
	"github.com/Cyclone1070/toolshed/internal/logging"
	"github.com/Cyclone1070/toolshed/internal/tool/service/fs"
	"github.com/Cyclone1070/toolshed/internal/tool/service/workdir"
	"github.com/Cyclone1070/toolshed/internal/transport/mcpserver"
)

const version = "v0.1.0"

func main() {
	cfg := config.LoadOrDefault()
	logger := logging.NewStderr(cfg.Logging.Level, cfg.Logging.Development)
	defer func() { _ = logger.Sync() }()

	root := cfg.Workspace.Root
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to determine current directory: %v\n", err)
			os.Exit(1)
		}
		root = cwd
	}

	state, err := workdir.New(root)
	if err != nil {
		logger.Fatal("invalid working directory", zap.String("root", root), zap.Error(err))
	}

	dispatcher := dispatch.NewDispatcher(adapter.DefaultTools(fs.NewOSFileSystem(), state)...)
	server := mcpserver.New(dispatcher, version, logger)

	logger.Info("mcp server starting", zap.String("workdir", state.Get()))
	if err := mcpserver.Run(context.Background(), server); err != nil {
		logger.Fatal("mcp server failed", zap.Error(err))
	}
}
