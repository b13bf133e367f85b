// Package git wraps the external git binary for all mutating operations
// and go-git for read-only repository inspection.
//
// Durable state (history, index, working tree) is owned entirely by the
// git repository on disk; this package never caches it.
package git
