// Command toolshedd serves the tool catalog over HTTP JSON, the bridge
// consumed by browser clients. Listens on PORT (default 3001).
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Cyclone1070/toolshed/internal/adapter"
	"github.com/Cyclone1070/toolshed/internal/config"
	"github.com/Cyclone1070/toolshed/internal/dispatch"
	"github.com/Cyclone1070/toolshed/internal/logging"
	"github.com/Cyclone1070/toolshed/internal/tool/service/fs"
	"github.com/Cyclone1070/toolshed/internal/tool/service/workdir"
	"github.com/Cyclone1070/toolshed/internal/transport/httpbridge"
)

func main() {
	cfg := config.LoadOrDefault()
	logger := logging.NewDefault(cfg.Logging.Level, cfg.Logging.Development)
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
	server := httpbridge.NewServer(cfg, dispatcher, logger)

	logger.Info("starting http bridge", zap.String("workdir", state.Get()), zap.String("port", cfg.Server.Port))
	if err := server.Run(); err != nil {
		logger.Fatal("http bridge failed", zap.Error(err))
	}
}
