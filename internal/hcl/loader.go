package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"go.uber.org/multierr"

	"github.com/vk/taskmill/internal/config"
	"github.com/vk/taskmill/internal/ctxlog"
	"github.com/vk/taskmill/internal/fsutil"
	"github.com/vk/taskmill/internal/schema"
)

// Extension is the file extension recognized as a taskfile.
const Extension = ".hcl"

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL taskfile loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load orchestrates the taskfile loading process: discover files under the
// given paths, parse each one, and translate every task block into the
// agnostic model. Problems are collected per file so one broken taskfile does
// not mask errors in another.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.CollectFiles(Extension, paths...)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered taskfiles.", "count", len(files))

	model := &config.Model{}
	parser := hclparse.NewParser()

	var loadErr error
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			loadErr = multierr.Append(loadErr, fmt.Errorf("failed to parse taskfile %s: %w", file, diags))
			continue
		}

		var root schema.Taskfile
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			loadErr = multierr.Append(loadErr, fmt.Errorf("failed to decode taskfile %s: %w", file, diags))
			continue
		}

		for _, t := range root.Tasks {
			translated, err := l.translateTask(ctx, t, file)
			if err != nil {
				loadErr = multierr.Append(loadErr, err)
				continue
			}
			model.Tasks = append(model.Tasks, translated)
		}
	}
	if loadErr != nil {
		return nil, loadErr
	}

	logger.Debug("HCL loading complete.", "tasks", len(model.Tasks))
	return model, nil
}
