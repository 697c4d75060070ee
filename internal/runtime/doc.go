// Package runtime provides the execution context for seedrepo commands.
//
// It carries the shared dependencies actions need: the logger, the user
// configuration, and the optional push diagnoser.
package runtime
