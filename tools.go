//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// Tools used by this module:
// - github.com/matryer/moq (service and handler test doubles)
// - github.com/pressly/goose/v3/cmd/goose (ad-hoc migration authoring; the binaries embed migrations)
// - poppler-utils pdftotext (runtime, not a Go module)
