// Package extension provides run-time registries of action services and of
// the Go types their methods accept and return.
//
// The registries are normally populated through the root alds package,
// therefore most applications do not need to import this package directly.
package extension
