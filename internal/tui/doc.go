// Package tui provides the terminal user interface for seedrepo.
//
// It handles:
//   - The interactive input form (bubbletea)
//   - File and directory pickers (survey)
//   - Leveled console and file logging (Splog)
//   - Tree rendering of structure plans (lipgloss)
package tui
