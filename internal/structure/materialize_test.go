package structure_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	seederrors "seedrepo.dev/seedrepo/internal/errors"
	"seedrepo.dev/seedrepo/internal/structure"
)

// listTree returns every path under root, slash separated, with a trailing
// slash on directories.
func listTree(t *testing.T, root string) []string {
	t.Helper()
	var out []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			rel += "/"
		}
		out = append(out, rel)
		return nil
	})
	require.NoError(t, err)
	sort.Strings(out)
	return out
}

func mustParse(t *testing.T, doc string) structure.Description {
	t.Helper()
	desc, err := structure.Parse([]byte(doc), structure.FormatJSON)
	require.NoError(t, err)
	return desc
}

func TestMaterialize(t *testing.T) {
	t.Run("creates the documented example exactly", func(t *testing.T) {
		base := filepath.Join(t.TempDir(), "proj")
		desc := mustParse(t, `{"src": {"main.py": ""}, "docs": ["readme.md", "", "license.md"]}`)

		require.NoError(t, structure.Materialize(base, desc))

		require.Equal(t, []string{
			"docs/",
			"docs/license.md",
			"docs/readme.md",
			"src/",
			"src/main.py",
		}, listTree(t, base))
	})

	t.Run("every created file is empty", func(t *testing.T) {
		base := t.TempDir()
		desc := mustParse(t, `{"a.txt": "some text is ignored", "d": {"e": ["f.txt"], "g": {"h.md": ""}}}`)
		require.NoError(t, structure.Materialize(base, desc))

		for _, pp := range structure.Plan(desc) {
			info, err := os.Stat(filepath.Join(base, filepath.FromSlash(pp.Path)))
			require.NoError(t, err, pp.Path)
			if pp.Kind == structure.KindFile {
				require.True(t, info.Mode().IsRegular(), pp.Path)
				require.Zero(t, info.Size(), pp.Path)
			} else {
				require.True(t, info.IsDir(), pp.Path)
			}
		}
	})

	t.Run("blank list entries create nothing", func(t *testing.T) {
		base := t.TempDir()
		desc := mustParse(t, `{"docs": ["", "one.md", "", "", "two.md", ""]}`)
		require.NoError(t, structure.Materialize(base, desc))

		entries, err := os.ReadDir(filepath.Join(base, "docs"))
		require.NoError(t, err)
		require.Len(t, entries, 2)
	})

	t.Run("an all blank list still creates the directory", func(t *testing.T) {
		base := t.TempDir()
		require.NoError(t, structure.Materialize(base, mustParse(t, `{"empty": ["", ""]}`)))
		require.Equal(t, []string{"empty/"}, listTree(t, base))
	})

	t.Run("names with separators create their parents", func(t *testing.T) {
		base := t.TempDir()
		desc := mustParse(t, `{"a/b/c.txt": "", "docs": ["guides/intro.md"]}`)
		require.NoError(t, structure.Materialize(base, desc))
		require.Equal(t, []string{
			"a/",
			"a/b/",
			"a/b/c.txt",
			"docs/",
			"docs/guides/",
			"docs/guides/intro.md",
		}, listTree(t, base))
	})

	t.Run("rerun keeps the shape and truncates contents", func(t *testing.T) {
		base := t.TempDir()
		desc := mustParse(t, `{"src": {"main.py": ""}, "docs": ["readme.md"]}`)
		require.NoError(t, structure.Materialize(base, desc))
		before := listTree(t, base)

		readme := filepath.Join(base, "docs", "readme.md")
		require.NoError(t, os.WriteFile(readme, []byte("hello"), 0o600))

		require.NoError(t, structure.Materialize(base, desc))
		require.Equal(t, before, listTree(t, base))

		info, err := os.Stat(readme)
		require.NoError(t, err)
		require.Zero(t, info.Size())
	})

	t.Run("leaves unrelated existing entries alone", func(t *testing.T) {
		base := t.TempDir()
		keep := filepath.Join(base, "src", "keep.txt")
		require.NoError(t, os.MkdirAll(filepath.Dir(keep), 0o755))
		require.NoError(t, os.WriteFile(keep, []byte("keep me"), 0o600))

		require.NoError(t, structure.Materialize(base, mustParse(t, `{"src": {"main.py": ""}}`)))

		data, err := os.ReadFile(keep)
		require.NoError(t, err)
		require.Equal(t, "keep me", string(data))
	})

	t.Run("file where a directory is required is a conflict", func(t *testing.T) {
		base := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(base, "src"), []byte("x"), 0o600))

		err := structure.Materialize(base, mustParse(t, `{"src": {"main.py": ""}}`))
		require.ErrorIs(t, err, seederrors.ErrPathConflict)

		var conflict *seederrors.PathConflictError
		require.ErrorAs(t, err, &conflict)
		require.Equal(t, filepath.Join(base, "src"), conflict.Path)
		require.Equal(t, "directory", conflict.Want)
	})

	t.Run("file in the middle of a nested name is a conflict", func(t *testing.T) {
		base := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(base, "a"), nil, 0o600))

		err := structure.Materialize(base, mustParse(t, `{"a/b.txt": ""}`))
		require.ErrorIs(t, err, seederrors.ErrPathConflict)
	})

	t.Run("directory where a file is required is a conflict", func(t *testing.T) {
		base := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(base, "docs", "readme.md"), 0o755))

		err := structure.Materialize(base, mustParse(t, `{"docs": ["readme.md"]}`))
		require.ErrorIs(t, err, seederrors.ErrPathConflict)

		var conflict *seederrors.PathConflictError
		require.ErrorAs(t, err, &conflict)
		require.Equal(t, "file", conflict.Want)
	})

	t.Run("creates a missing base path", func(t *testing.T) {
		base := filepath.Join(t.TempDir(), "does", "not", "exist")
		require.NoError(t, structure.Materialize(base, mustParse(t, `{"x": ""}`)))
		require.FileExists(t, filepath.Join(base, "x"))
	})
}
