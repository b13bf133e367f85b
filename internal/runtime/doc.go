// Package runtime provides the per-invocation context handed to every
// command: the logger, the user config, and the located repository.
package runtime
