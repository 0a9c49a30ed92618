// Package docset imports external documentation bundles into the local
// cache: DocC render JSON archives are copied into the apple-docs layout
// grouped by framework, and Dash docset bundles can be inspected through
// their SQLite search catalog. The SQLite driver is chosen at build time,
// cgo or pure Go, mirroring how the binary itself is built.
package docset
