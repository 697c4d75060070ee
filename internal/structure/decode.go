package structure

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	seederrors "seedrepo.dev/seedrepo/internal/errors"
)

// Format identifies the document format of a structure file
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath picks a format from the file extension. Unknown extensions
// are treated as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatJSON
	}
}

// Load reads and decodes the structure file at path
func Load(path string) (Description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read structure file %s: %w", path, err)
	}
	desc, err := Parse(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("failed to parse structure file %s: %w", path, err)
	}
	return desc, nil
}

// Parse decodes a structure description from data in the given format
func Parse(data []byte, format Format) (Description, error) {
	switch format {
	case FormatYAML:
		return parseYAML(data)
	case FormatTOML:
		return parseTOML(data)
	case FormatJSON, "":
		return parseJSON(data)
	default:
		return nil, fmt.Errorf("unsupported structure format %q", format)
	}
}

func parseJSON(data []byte) (Description, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, seederrors.NewStructureError("", fmt.Sprintf("malformed JSON: %v", err))
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, seederrors.NewStructureError("", "document root must be an object")
	}

	desc, err := decodeJSONObject(dec, "")
	if err != nil {
		return nil, err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, seederrors.NewStructureError("", "unexpected data after the root object")
	}
	return desc, nil
}

// decodeJSONObject reads the members of an object whose opening brace has
// already been consumed, including the closing brace. A repeated key keeps
// its first position and takes the last value.
func decodeJSONObject(dec *json.Decoder, keyPath string) (Description, error) {
	desc := Description{}
	seen := make(map[string]int)

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, seederrors.NewStructureError(keyPath, fmt.Sprintf("malformed JSON: %v", err))
		}
		key, ok := tok.(string)
		if !ok {
			return nil, seederrors.NewStructureError(keyPath, "object keys must be strings")
		}

		childPath := joinKeyPath(keyPath, key)
		if err := validateSegment(childPath, key); err != nil {
			return nil, err
		}

		entry, err := decodeJSONValue(dec, childPath)
		if err != nil {
			return nil, err
		}
		desc = desc.set(seen, key, entry)
	}

	if _, err := dec.Token(); err != nil {
		return nil, seederrors.NewStructureError(keyPath, fmt.Sprintf("malformed JSON: %v", err))
	}
	return desc, nil
}

func decodeJSONValue(dec *json.Decoder, keyPath string) (Entry, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, seederrors.NewStructureError(keyPath, fmt.Sprintf("malformed JSON: %v", err))
	}

	switch v := tok.(type) {
	case string:
		return EmptyFile{}, nil
	case json.Delim:
		switch v {
		case '{':
			sub, err := decodeJSONObject(dec, keyPath)
			if err != nil {
				return nil, err
			}
			return Subdirectory{Description: sub}, nil
		case '[':
			return decodeJSONList(dec, keyPath)
		}
	}
	return nil, seederrors.NewStructureError(keyPath, fmt.Sprintf("unsupported value of kind %s", jsonKind(tok)))
}

func decodeJSONList(dec *json.Decoder, keyPath string) (Entry, error) {
	names := []string{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, seederrors.NewStructureError(keyPath, fmt.Sprintf("malformed JSON: %v", err))
		}
		name, ok := tok.(string)
		if !ok {
			return nil, seederrors.NewStructureError(keyPath, fmt.Sprintf("list entries must be strings, got %s", jsonKind(tok)))
		}
		if name != "" {
			if err := validateSegment(joinKeyPath(keyPath, name), name); err != nil {
				return nil, err
			}
		}
		names = append(names, name)
	}
	if _, err := dec.Token(); err != nil {
		return nil, seederrors.NewStructureError(keyPath, fmt.Sprintf("malformed JSON: %v", err))
	}
	return FileList{Names: names}, nil
}

func jsonKind(tok json.Token) string {
	switch v := tok.(type) {
	case json.Number, float64:
		return "number"
	case bool:
		return "boolean"
	case nil:
		return "null"
	case json.Delim:
		if v == '{' || v == '}' {
			return "object"
		}
		return "array"
	default:
		return fmt.Sprintf("%T", tok)
	}
}
