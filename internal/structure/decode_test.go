package structure_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	seederrors "seedrepo.dev/seedrepo/internal/errors"
	"seedrepo.dev/seedrepo/internal/structure"
)

func names(desc structure.Description) []string {
	out := make([]string, 0, len(desc))
	for _, n := range desc {
		out = append(out, n.Name)
	}
	return out
}

func TestParseJSON(t *testing.T) {
	t.Run("decodes all three variants in document order", func(t *testing.T) {
		desc, err := structure.Parse([]byte(`{
			"src": {"main.py": ""},
			"docs": ["readme.md", "", "license.md"],
			"Makefile": "ignored content"
		}`), structure.FormatJSON)
		require.NoError(t, err)
		require.Equal(t, []string{"src", "docs", "Makefile"}, names(desc))

		src, ok := desc.Lookup("src")
		require.True(t, ok)
		sub, ok := src.(structure.Subdirectory)
		require.True(t, ok)
		require.Equal(t, structure.Description{{Name: "main.py", Entry: structure.EmptyFile{}}}, sub.Description)

		docs, _ := desc.Lookup("docs")
		require.Equal(t, structure.FileList{Names: []string{"readme.md", "", "license.md"}}, docs)

		mk, _ := desc.Lookup("Makefile")
		require.Equal(t, structure.EmptyFile{}, mk)
	})

	t.Run("keeps key order that differs from lexical order", func(t *testing.T) {
		desc, err := structure.Parse([]byte(`{"zeta": "", "alpha": "", "mid": {}}`), structure.FormatJSON)
		require.NoError(t, err)
		require.Equal(t, []string{"zeta", "alpha", "mid"}, names(desc))
	})

	t.Run("empty object and empty list are valid", func(t *testing.T) {
		desc, err := structure.Parse([]byte(`{"empty": {}, "none": []}`), structure.FormatJSON)
		require.NoError(t, err)
		require.Len(t, desc, 2)
		require.Equal(t, structure.FileList{Names: []string{}}, desc[1].Entry)
	})

	t.Run("a repeated key keeps its position and takes the last value", func(t *testing.T) {
		desc, err := structure.Parse([]byte(`{"docs": "", "src": {}, "docs": ["a.md"]}`), structure.FormatJSON)
		require.NoError(t, err)
		require.Equal(t, []string{"docs", "src"}, names(desc))
		require.Equal(t, structure.FileList{Names: []string{"a.md"}}, desc[0].Entry)
	})

	t.Run("repeated keys merge nothing across nested objects", func(t *testing.T) {
		desc, err := structure.Parse([]byte(`{"src": {"a.go": ""}, "src": {"b.go": ""}}`), structure.FormatJSON)
		require.NoError(t, err)
		require.Equal(t, structure.Description{
			{Name: "src", Entry: structure.Subdirectory{Description: structure.Description{{Name: "b.go", Entry: structure.EmptyFile{}}}}},
		}, desc)
	})

	errorCases := []struct {
		name    string
		doc     string
		keyPath string
	}{
		{name: "root is an array", doc: `["a"]`},
		{name: "number value", doc: `{"src": {"count": 3}}`, keyPath: "src/count"},
		{name: "boolean value", doc: `{"flag": true}`, keyPath: "flag"},
		{name: "null value", doc: `{"nothing": null}`, keyPath: "nothing"},
		{name: "non string list entry", doc: `{"docs": ["a", 1]}`, keyPath: "docs"},
		{name: "nested list in list", doc: `{"docs": [["a"]]}`, keyPath: "docs"},
		{name: "empty key", doc: `{"": ""}`},
		{name: "parent escape", doc: `{"../evil": ""}`, keyPath: "../evil"},
		{name: "parent escape in list", doc: `{"docs": ["../../x"]}`, keyPath: "docs/../../x"},
		{name: "absolute key", doc: `{"/etc/passwd": ""}`, keyPath: "/etc/passwd"},
		{name: "trailing data", doc: `{"a": ""} {"b": ""}`},
		{name: "truncated document", doc: `{"a": {"b": ""}`},
	}
	for _, tc := range errorCases {
		t.Run("rejects "+tc.name, func(t *testing.T) {
			_, err := structure.Parse([]byte(tc.doc), structure.FormatJSON)
			require.Error(t, err)
			require.ErrorIs(t, err, seederrors.ErrInvalidStructure)
			if tc.keyPath != "" {
				var structErr *seederrors.StructureError
				require.ErrorAs(t, err, &structErr)
				require.Equal(t, tc.keyPath, structErr.KeyPath)
			}
		})
	}
}

func TestParseYAML(t *testing.T) {
	t.Run("decodes variants and keeps order", func(t *testing.T) {
		doc := `
src:
  main.go: ""
  internal:
    util.go: ""
docs:
  - readme.md
  - ""
  - license.md
Makefile: ""
`
		desc, err := structure.Parse([]byte(doc), structure.FormatYAML)
		require.NoError(t, err)
		require.Equal(t, []string{"src", "docs", "Makefile"}, names(desc))

		src := desc[0].Entry.(structure.Subdirectory)
		require.Equal(t, []string{"main.go", "internal"}, names(src.Description))
		internal := src.Description[1].Entry.(structure.Subdirectory)
		require.Equal(t, structure.EmptyFile{}, internal.Description[0].Entry)

		require.Equal(t, structure.FileList{Names: []string{"readme.md", "", "license.md"}}, desc[1].Entry)
	})

	t.Run("follows aliases", func(t *testing.T) {
		doc := `
common: &files
  - a.txt
copy: *files
`
		desc, err := structure.Parse([]byte(doc), structure.FormatYAML)
		require.NoError(t, err)
		require.Equal(t, structure.FileList{Names: []string{"a.txt"}}, desc[1].Entry)
	})

	t.Run("a repeated key keeps its position and takes the last value", func(t *testing.T) {
		desc, err := structure.Parse([]byte("docs: \"\"\nsrc: {}\ndocs:\n  - a.md\n"), structure.FormatYAML)
		require.NoError(t, err)
		require.Equal(t, []string{"docs", "src"}, names(desc))
		require.Equal(t, structure.FileList{Names: []string{"a.md"}}, desc[0].Entry)
	})

	t.Run("rejects non string scalars", func(t *testing.T) {
		_, err := structure.Parse([]byte("count: 3\n"), structure.FormatYAML)
		require.ErrorIs(t, err, seederrors.ErrInvalidStructure)
	})

	t.Run("rejects null like JSON does", func(t *testing.T) {
		_, err := structure.Parse([]byte("src:\n  README.md:\n"), structure.FormatYAML)
		require.ErrorIs(t, err, seederrors.ErrInvalidStructure)
		var structErr *seederrors.StructureError
		require.ErrorAs(t, err, &structErr)
		require.Equal(t, "src/README.md", structErr.KeyPath)
	})

	t.Run("rejects a sequence root", func(t *testing.T) {
		_, err := structure.Parse([]byte("- a\n- b\n"), structure.FormatYAML)
		require.ErrorIs(t, err, seederrors.ErrInvalidStructure)
	})

	t.Run("rejects an empty document", func(t *testing.T) {
		_, err := structure.Parse([]byte(""), structure.FormatYAML)
		require.ErrorIs(t, err, seederrors.ErrInvalidStructure)
	})
}

func TestParseTOML(t *testing.T) {
	doc := `
"Makefile" = ""
docs = ["readme.md", "", "license.md"]

[src]
"main.go" = ""
`
	desc, err := structure.Parse([]byte(doc), structure.FormatTOML)
	require.NoError(t, err)
	require.Equal(t, []string{"Makefile", "docs", "src"}, names(desc))
	require.Equal(t, structure.FileList{Names: []string{"readme.md", "", "license.md"}}, desc[1].Entry)
	require.Equal(t, structure.Subdirectory{Description: structure.Description{{Name: "main.go", Entry: structure.EmptyFile{}}}}, desc[2].Entry)

	_, err = structure.Parse([]byte("count = 3\n"), structure.FormatTOML)
	require.ErrorIs(t, err, seederrors.ErrInvalidStructure)
}

func TestFormatFromPath(t *testing.T) {
	require.Equal(t, structure.FormatJSON, structure.FormatFromPath("layout.json"))
	require.Equal(t, structure.FormatYAML, structure.FormatFromPath("layout.YML"))
	require.Equal(t, structure.FormatYAML, structure.FormatFromPath("dir/layout.yaml"))
	require.Equal(t, structure.FormatTOML, structure.FormatFromPath("layout.toml"))
	require.Equal(t, structure.FormatJSON, structure.FormatFromPath("layout.txt"))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("reads a file by extension", func(t *testing.T) {
		path := filepath.Join(dir, "layout.yaml")
		require.NoError(t, os.WriteFile(path, []byte("a: \"\"\n"), 0o600))
		desc, err := structure.Load(path)
		require.NoError(t, err)
		require.Equal(t, []string{"a"}, names(desc))
	})

	t.Run("missing file is an io error", func(t *testing.T) {
		_, err := structure.Load(filepath.Join(dir, "missing.json"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid content names the file", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"a": 1}`), 0o600))
		_, err := structure.Load(path)
		require.ErrorIs(t, err, seederrors.ErrInvalidStructure)
		require.Contains(t, err.Error(), "bad.json")
	})
}
