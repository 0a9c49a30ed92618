//go:build cgo && !purego
// +build cgo,!purego

package docset

// Compiled for cgo builds. The mattn driver wraps the C SQLite library,
// which reads Dash catalog databases fastest.
//
// Build command:
//   CGO_ENABLED=1 go build ./...

import (
	_ "github.com/mattn/go-sqlite3"
)

const (
	// DriverName is the SQLite driver used to read docset catalogs.
	DriverName = "sqlite3"

	// BuildMode describes the current build configuration.
	BuildMode = "cgo"
)
