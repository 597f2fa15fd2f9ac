// Package hcl provides the concrete HCL implementation of the taskfile
// loading interface defined in the `config` package. It is responsible for
// file discovery, parsing, and HCL-to-model translation.
package hcl
