// Package cli parses taskmill's command-line arguments into an app.Config:
// the taskfile path, the plan target, list mode, and the logging options.
// Validation failures surface as ExitError values carrying the process exit
// code; help and a missing path are clean exits, not errors.
package cli
