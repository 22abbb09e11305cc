package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigFileParse = errors.New("failed to parse config file")
	ErrConfigNotFound  = errors.New("config file not found")
	// Configuration validation errors.
	ErrTodoFileEmpty = errors.New("todo_file cannot be empty")
	ErrLogFileEmpty  = errors.New("log_file cannot be empty")
)
