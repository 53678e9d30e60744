// Command toolshed runs the interactive shell: natural-language prompts are
// translated into sandboxed file operations confined to the working
// directory.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Cyclone1070/toolshed/internal/adapter"
	"github.com/Cyclone1070/toolshed/internal/config"
	"github.com/Cyclone1070/toolshed/internal/dispatch"
	"github.com/Cyclone1070/toolshed/internal/repl"
	"github.com/Cyclone1070/toolshed/internal/tool/service/fs"
	"github.com/Cyclone1070/toolshed/internal/tool/service/workdir"
)

func main() {
	cfg := config.LoadOrDefault()

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
		fmt.Fprintf(os.Stderr, "invalid working directory %s: %v\n", root, err)
		os.Exit(1)
	}

	dispatcher := dispatch.NewDispatcher(adapter.DefaultTools(fs.NewOSFileSystem(), state)...)

	model := repl.New(dispatcher, state, repl.NewGlamourRenderer())
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "shell failed: %v\n", err)
		os.Exit(1)
	}
}
