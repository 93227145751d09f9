package logging

import (
	"fmt"

	"go.uber.org/zap"
)

// New builds the diagnostics logger. The terminal owns stdout and
// stderr while the game runs, so output goes to a file; with no path
// configured a nop logger is returned and logging costs nothing.
func New(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
