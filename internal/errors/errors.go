// Package errors provides sentinel errors and custom error types for the seedrepo application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrMissingStructurePath indicates that no structure file was supplied
	ErrMissingStructurePath = errors.New("no structure file selected")

	// ErrInvalidInput indicates that a workflow input failed validation
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidStructure indicates that a structure description could not be decoded
	ErrInvalidStructure = errors.New("invalid structure description")

	// ErrPathConflict indicates that an existing filesystem entry has the wrong kind
	ErrPathConflict = errors.New("path conflict")

	// ErrBranchNotFound indicates that a branch does not exist
	ErrBranchNotFound = errors.New("branch not found")

	// ErrPushFailed indicates that a push to a remote was rejected or could not connect
	ErrPushFailed = errors.New("push failed")
)

// InputValidationError represents a workflow input that failed validation
type InputValidationError struct {
	Field  string
	Reason string
}

func (e *InputValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Is returns true if the target error is ErrInvalidInput, or ErrMissingStructurePath
// when the structure path is the offending field.
func (e *InputValidationError) Is(target error) bool {
	if target == ErrMissingStructurePath {
		return e.Field == "structure path"
	}
	return target == ErrInvalidInput
}

// NewInputValidationError creates a new InputValidationError
func NewInputValidationError(field, reason string) *InputValidationError {
	return &InputValidationError{Field: field, Reason: reason}
}

// StructureError represents a structure description that could not be decoded
type StructureError struct {
	KeyPath string
	Reason  string
}

func (e *StructureError) Error() string {
	if e.KeyPath == "" {
		return fmt.Sprintf("invalid structure: %s", e.Reason)
	}
	return fmt.Sprintf("invalid structure at %q: %s", e.KeyPath, e.Reason)
}

// Is returns true if the target error is ErrInvalidStructure
func (e *StructureError) Is(target error) bool {
	return target == ErrInvalidStructure
}

// NewStructureError creates a new StructureError
func NewStructureError(keyPath, reason string) *StructureError {
	return &StructureError{KeyPath: keyPath, Reason: reason}
}

// PathConflictError represents an existing entry whose kind does not match the
// kind the structure requires at that path
type PathConflictError struct {
	Path string
	Want string
}

func (e *PathConflictError) Error() string {
	return fmt.Sprintf("cannot create %s at %s: a different kind of entry already exists", e.Want, e.Path)
}

// Is returns true if the target error is ErrPathConflict
func (e *PathConflictError) Is(target error) bool {
	return target == ErrPathConflict
}

// NewPathConflictError creates a new PathConflictError
func NewPathConflictError(path, want string) *PathConflictError {
	return &PathConflictError{Path: path, Want: want}
}

// BranchNotFoundError represents an error when a branch is not found
type BranchNotFoundError struct {
	BranchName string
}

func (e *BranchNotFoundError) Error() string {
	return fmt.Sprintf("branch %s does not exist", e.BranchName)
}

// Is returns true if the target error is ErrBranchNotFound
func (e *BranchNotFoundError) Is(target error) bool {
	return target == ErrBranchNotFound
}

// NewBranchNotFoundError creates a new BranchNotFoundError
func NewBranchNotFoundError(branchName string) *BranchNotFoundError {
	return &BranchNotFoundError{BranchName: branchName}
}

// StageError wraps a failure in one of the repository bootstrap stages
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// NewStageError creates a new StageError
func NewStageError(stage string, err error) *StageError {
	return &StageError{Stage: stage, Err: err}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}
