// Package core defines the shared types used across prettylog.
//
// It provides the Level type for severity filtering, the Entry type that
// represents a single log event, and the Field type for structured
// key-value pairs.
//
// Every Entry carries a Target, the scope a filter directive is matched
// against. Targets are Go import paths ("github.com/acme/app/db") unless a
// logger was given an explicit name. PackageOf derives the import path from
// a fully qualified function name as reported by the runtime.
//
// Entry objects are pooled via sync.Pool. Callers get an Entry with
// GetEntry and return it with PutEntry once the handler has consumed it.
package core
