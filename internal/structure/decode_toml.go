package structure

import (
	"fmt"
	"sort"

	"github.com/pelletier/go-toml/v2"

	seederrors "seedrepo.dev/seedrepo/internal/errors"
)

// parseTOML decodes a TOML document. Tables come back as Go maps, so keys are
// emitted in lexical order.
func parseTOML(data []byte) (Description, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, seederrors.NewStructureError("", fmt.Sprintf("malformed TOML: %v", err))
	}
	return decodeTOMLTable(doc, "")
}

func decodeTOMLTable(table map[string]any, keyPath string) (Description, error) {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	desc := make(Description, 0, len(keys))
	for _, key := range keys {
		childPath := joinKeyPath(keyPath, key)
		if err := validateSegment(childPath, key); err != nil {
			return nil, err
		}
		entry, err := decodeTOMLValue(table[key], childPath)
		if err != nil {
			return nil, err
		}
		desc = append(desc, Node{Name: key, Entry: entry})
	}
	return desc, nil
}

func decodeTOMLValue(value any, keyPath string) (Entry, error) {
	switch v := value.(type) {
	case string:
		return EmptyFile{}, nil
	case map[string]any:
		sub, err := decodeTOMLTable(v, keyPath)
		if err != nil {
			return nil, err
		}
		return Subdirectory{Description: sub}, nil
	case []any:
		names := make([]string, 0, len(v))
		for _, item := range v {
			name, ok := item.(string)
			if !ok {
				return nil, seederrors.NewStructureError(keyPath, fmt.Sprintf("list entries must be strings, got %T", item))
			}
			if name != "" {
				if err := validateSegment(joinKeyPath(keyPath, name), name); err != nil {
					return nil, err
				}
			}
			names = append(names, name)
		}
		return FileList{Names: names}, nil
	}
	return nil, seederrors.NewStructureError(keyPath, fmt.Sprintf("unsupported value of type %T", value))
}
