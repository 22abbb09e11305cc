// Package dependencies provides a centralized dependency container for the opskit application.
// This package follows Go idioms for dependency injection by grouping related dependencies
// together and providing a fluent API for configuration.
package dependencies

import (
	"errors"

	"opskit/pkg/archive"
	"opskit/pkg/calc"
	"opskit/pkg/compress"
	"opskit/pkg/config"
	"opskit/pkg/fs"
	"opskit/pkg/git"
	"opskit/pkg/logger"
	"opskit/pkg/prompt"
	"opskit/pkg/service"
	"opskit/pkg/sysinfo"
	"opskit/pkg/todo"
)

// Validation errors for missing dependencies.
var (
	ErrFSMissing         = errors.New("fs dependency is required but not set")
	ErrGitMissing        = errors.New("git dependency is required but not set")
	ErrArchiverMissing   = errors.New("archiver dependency is required but not set")
	ErrCompressorMissing = errors.New("compressor dependency is required but not set")
	ErrInspectorMissing  = errors.New("inspector dependency is required but not set")
	ErrServiceMissing    = errors.New("service manager dependency is required but not set")
	ErrEvaluatorMissing  = errors.New("evaluator dependency is required but not set")
	ErrConfigMissing     = errors.New("config dependency is required but not set")
	ErrLoggerMissing     = errors.New("logger dependency is required but not set")
	ErrPromptMissing     = errors.New("prompt dependency is required but not set")
	ErrTodoStoreMissing  = errors.New("todo store dependency is required but not set")
)

// Dependencies holds shared dependencies across the application.
// This follows the Go idiom of grouping related data together.
type Dependencies struct {
	FS         fs.FS
	Git        git.Git
	Archiver   archive.Archiver
	Compressor compress.Compressor
	Inspector  sysinfo.Inspector
	Service    service.Manager
	Evaluator  calc.Evaluator
	Config     config.Manager
	Logger     logger.Logger
	Prompt     prompt.Prompter
	TodoStore  todo.Store
}

// New creates a new Dependencies instance with sensible defaults.
// This follows Go's convention of New* functions for constructors.
func New() *Dependencies {
	defaultFS := fs.NewFS()
	return &Dependencies{
		FS:         defaultFS,
		Git:        git.NewGit(),
		Archiver:   archive.NewArchiver(),
		Compressor: compress.NewCompressor(),
		Inspector:  sysinfo.NewInspector(),
		Service:    service.NewManager(defaultFS),
		Evaluator:  calc.NewEvaluator(),
		Logger:     logger.NewNoopLogger(),
		Prompt:     prompt.NewPrompt(),
		// Note: Config and TodoStore are intentionally left nil
		// as they require specific configuration or are set via With* methods
	}
}

// WithFS sets the filesystem and returns the instance for chaining.
func (d *Dependencies) WithFS(fs fs.FS) *Dependencies {
	d.FS = fs
	return d
}

// WithGit sets the git instance and returns the instance for chaining.
func (d *Dependencies) WithGit(git git.Git) *Dependencies {
	d.Git = git
	return d
}

// WithArchiver sets the archiver and returns the instance for chaining.
func (d *Dependencies) WithArchiver(a archive.Archiver) *Dependencies {
	d.Archiver = a
	return d
}

// WithCompressor sets the compressor and returns the instance for chaining.
func (d *Dependencies) WithCompressor(c compress.Compressor) *Dependencies {
	d.Compressor = c
	return d
}

// WithInspector sets the system inspector and returns the instance for chaining.
func (d *Dependencies) WithInspector(i sysinfo.Inspector) *Dependencies {
	d.Inspector = i
	return d
}

// WithService sets the service manager and returns the instance for chaining.
func (d *Dependencies) WithService(s service.Manager) *Dependencies {
	d.Service = s
	return d
}

// WithEvaluator sets the expression evaluator and returns the instance for chaining.
func (d *Dependencies) WithEvaluator(e calc.Evaluator) *Dependencies {
	d.Evaluator = e
	return d
}

// WithConfig sets the config manager and returns the instance for chaining.
func (d *Dependencies) WithConfig(cfg config.Manager) *Dependencies {
	d.Config = cfg
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(logger logger.Logger) *Dependencies {
	d.Logger = logger
	return d
}

// WithPrompt sets the prompt and returns the instance for chaining.
func (d *Dependencies) WithPrompt(prompt prompt.Prompter) *Dependencies {
	d.Prompt = prompt
	return d
}

// WithTodoStore sets the todo store and returns the instance for chaining.
func (d *Dependencies) WithTodoStore(s todo.Store) *Dependencies {
	d.TodoStore = s
	return d
}

// dependencyCheck represents a dependency validation check.
type dependencyCheck struct {
	dep interface{}
	err error
}

// Validate checks that all required dependencies are set and returns an error if any are missing.
func (d *Dependencies) Validate() error {
	checks := []dependencyCheck{
		{d.FS, ErrFSMissing},
		{d.Git, ErrGitMissing},
		{d.Archiver, ErrArchiverMissing},
		{d.Compressor, ErrCompressorMissing},
		{d.Inspector, ErrInspectorMissing},
		{d.Service, ErrServiceMissing},
		{d.Evaluator, ErrEvaluatorMissing},
		{d.Config, ErrConfigMissing},
		{d.Logger, ErrLoggerMissing},
		{d.Prompt, ErrPromptMissing},
		{d.TodoStore, ErrTodoStoreMissing},
	}

	for _, check := range checks {
		if check.dep == nil {
			return check.err
		}
	}
	return nil
}
