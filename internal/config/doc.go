// Package config provides configuration loading, merging, and validation
// for setlang.
//
// Configuration is assembled from the following layers (later layers
// override earlier non-zero fields):
//  1. Built-in defaults
//  2. SETLANG_* environment variables
//
// With no environment set the tool targets <cwd>/.vscode/settings.json and
// writes "en" when called without an argument. The main entry point is
// [GetStructuredConfig].
package config
