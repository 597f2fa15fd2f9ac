// Package config defines the format-agnostic configuration model for the
// application, along with the Loader interface for reading taskfiles from
// various sources.
//
// The `config.Model` is the single source of truth for task registration and
// graph construction. Concrete implementations of the Loader interface, such
// as for HCL, are provided in separate packages.
package config
