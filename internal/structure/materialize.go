package structure

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	seederrors "seedrepo.dev/seedrepo/internal/errors"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Materialize creates every directory and empty file described by desc under
// basePath. Existing files named by desc are truncated; other existing
// entries are left alone. An entry of the wrong kind in the way is returned
// as a PathConflictError.
func Materialize(basePath string, desc Description) error {
	for _, node := range desc {
		target := filepath.Join(basePath, filepath.FromSlash(node.Name))

		switch entry := node.Entry.(type) {
		case EmptyFile:
			if err := createEmptyFile(target); err != nil {
				return err
			}
		case FileList:
			if err := ensureDir(target); err != nil {
				return err
			}
			for _, name := range entry.Names {
				if name == "" {
					continue
				}
				if err := createEmptyFile(filepath.Join(target, filepath.FromSlash(name))); err != nil {
					return err
				}
			}
		case Subdirectory:
			if err := ensureDir(target); err != nil {
				return err
			}
			if err := Materialize(target, entry.Description); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown entry type %T for %s", node.Entry, target)
		}
	}
	return nil
}

func ensureDir(path string) error {
	err := os.MkdirAll(path, dirPerm)
	if err == nil {
		return nil
	}
	if errors.Is(err, syscall.ENOTDIR) || errors.Is(err, fs.ErrExist) {
		return fmt.Errorf("%w: %w", seederrors.NewPathConflictError(path, KindDir.String()), err)
	}
	return fmt.Errorf("failed to create directory %s: %w", path, err)
}

// createEmptyFile creates path with zero length, truncating an existing file.
func createEmptyFile(path string) error {
	if err := ensureDir(filepath.Dir(path)); err != nil {
		return err
	}

	if info, err := os.Lstat(path); err == nil && info.IsDir() {
		return seederrors.NewPathConflictError(path, KindFile.String())
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close file %s: %w", path, err)
	}
	return nil
}
