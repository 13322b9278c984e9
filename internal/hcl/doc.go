// Package hcl provides the concrete HCL implementation of the config.Loader
// interface. It is responsible for file parsing, HCL-to-model translation,
// and cty-to-Go value conversion for runner arguments.
package hcl
