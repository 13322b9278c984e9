// Package config defines the format-agnostic pipeline configuration model
// and the Loader interface implemented by the format-specific loaders (HCL,
// YAML). The app package turns a loaded Model into executable task specs.
package config
