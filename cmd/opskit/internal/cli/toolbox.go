package cli

import (
	"fmt"

	"opskit/pkg/dependencies"
	"opskit/pkg/logger"
	"opskit/pkg/todo"
	"opskit/pkg/toolbox"
)

// NewToolbox creates a new Toolbox instance with the appropriate ConfigManager.
func NewToolbox() (toolbox.Toolbox, error) {
	configManager := NewConfigManager()

	// Get config to locate the todo store and the run log
	cfg, err := configManager.GetConfigWithFallback()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}

	tb, err := toolbox.NewToolbox(toolbox.NewToolboxParams{
		Dependencies: dependencies.New().
			WithConfig(configManager).
			WithTodoStore(todo.NewStore(dependencies.New().FS, cfg.TodoFile)),
	})
	if err != nil {
		return nil, err
	}

	// Every run appends to the log sink; verbose additionally mirrors
	// each line to stderr.
	tb.SetLogger(logger.NewSinkLogger(logger.SinkOptions{
		Path:    cfg.LogFile,
		Verbose: Verbose,
	}))

	return tb, nil
}
