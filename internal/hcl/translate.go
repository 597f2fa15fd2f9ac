// This file contains the logic for translating HCL schema structs into the
// format-agnostic configuration model defined in the config package.

package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/taskmill/internal/config"
	"github.com/vk/taskmill/internal/ctxlog"
	"github.com/vk/taskmill/internal/schema"
)

// translateTask converts the HCL-specific task schema into the agnostic model.
func (l *Loader) translateTask(ctx context.Context, t *schema.Task, source string) (*config.Task, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Translating task block.", "task", t.Name, "source", source)

	dependsOn, diags := dependsOnNames(t.DependsOn)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid depends_on for task '%s' in %s: %w", t.Name, source, diags)
	}

	out := &config.Task{
		Name:        t.Name,
		Description: t.Description,
		DependsOn:   dependsOn,
		Source:      source,
	}
	for _, req := range t.Requires {
		out.Requires = append(out.Requires, &config.Requirement{
			Task:     req.Task,
			Optional: req.Optional,
			Soft:     req.Soft,
		})
	}
	for _, req := range t.Enables {
		out.Enables = append(out.Enables, &config.Requirement{
			Task:     req.Task,
			Optional: req.Optional,
			Soft:     req.Soft,
		})
	}
	return out, nil
}

// dependsOnNames materializes a depends_on expression into task names. The
// attribute must be a list of literal strings; anything else is reported
// against its own source range. A missing attribute decodes as a synthetic
// null expression, which translates to no dependencies.
func dependsOnNames(expr hcl.Expression) ([]string, hcl.Diagnostics) {
	if expr == nil {
		return nil, nil
	}
	if v, probe := expr.Value(nil); !probe.HasErrors() && v.IsNull() {
		return nil, nil
	}

	elems, diags := hcl.ExprList(expr)
	if diags.HasErrors() {
		return nil, diags
	}

	var names []string
	for _, elem := range elems {
		val, valDiags := elem.Value(nil)
		if valDiags.HasErrors() {
			diags = append(diags, valDiags...)
			continue
		}
		if val.IsNull() || val.Type() != cty.String {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid depends_on entry",
				Detail:   "Each depends_on entry must be a task name string.",
				Subject:  elem.Range().Ptr(),
			})
			continue
		}
		names = append(names, val.AsString())
	}
	if diags.HasErrors() {
		return nil, diags
	}
	return names, nil
}
