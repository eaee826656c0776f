//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// Both are declared in the go.mod tool block and run with `go tool`:
// - github.com/matryer/moq (service, middleware and handler mocks, see go:generate directives)
// - github.com/pressly/goose/v3/cmd/goose (migrations CLI)
