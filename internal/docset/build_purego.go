//go:build !cgo || purego
// +build !cgo purego

package docset

// Compiled without CGO or with the purego tag. The modernc driver is a
// pure Go SQLite implementation: slower, but it cross-compiles anywhere
// without a C toolchain.
//
// Build command:
//   CGO_ENABLED=0 go build ./...

import (
	_ "modernc.org/sqlite"
)

const (
	// DriverName is the SQLite driver used to read docset catalogs.
	DriverName = "sqlite"

	// BuildMode describes the current build configuration.
	BuildMode = "purego"
)
