// Package actions provides the workflows behind seedrepo's commands.
//
// Actions accept a runtime.Context for the logger and shared dependencies,
// validate their options before any side effect, and report progress
// through the tui package.
package actions
