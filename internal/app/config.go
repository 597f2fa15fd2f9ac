package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	TaskfilePath string // .hcl file or directory
	Target       string
	ListTasks    bool

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.TaskfilePath == "" {
		return nil, errors.New("TaskfilePath is a required configuration field and cannot be empty")
	}
	if cfg.Target == "" && !cfg.ListTasks {
		return nil, errors.New("Target is a required configuration field and cannot be empty")
	}

	// Future validations for other fields can be added here.

	return &cfg, nil
}
