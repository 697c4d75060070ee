package structure

import (
	"fmt"

	"gopkg.in/yaml.v3"

	seederrors "seedrepo.dev/seedrepo/internal/errors"
)

// parseYAML decodes through yaml.Node so that mapping order survives.
// Like JSON, a null value ("README.md:") is rejected.
func parseYAML(data []byte) (Description, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, seederrors.NewStructureError("", fmt.Sprintf("malformed YAML: %v", err))
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, seederrors.NewStructureError("", "document is empty")
	}

	root := resolveAlias(doc.Content[0])
	if root.Kind != yaml.MappingNode {
		return nil, seederrors.NewStructureError("", "document root must be a mapping")
	}
	return decodeYAMLMapping(root, "")
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

func decodeYAMLMapping(node *yaml.Node, keyPath string) (Description, error) {
	desc := Description{}
	seen := make(map[string]int)

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := resolveAlias(node.Content[i])
		if keyNode.Kind != yaml.ScalarNode {
			return nil, seederrors.NewStructureError(keyPath, fmt.Sprintf("mapping keys must be scalars (line %d)", keyNode.Line))
		}
		key := keyNode.Value
		childPath := joinKeyPath(keyPath, key)
		if err := validateSegment(childPath, key); err != nil {
			return nil, err
		}

		entry, err := decodeYAMLValue(resolveAlias(node.Content[i+1]), childPath)
		if err != nil {
			return nil, err
		}
		desc = desc.set(seen, key, entry)
	}
	return desc, nil
}

func decodeYAMLValue(node *yaml.Node, keyPath string) (Entry, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.ShortTag() == "!!str" {
			return EmptyFile{}, nil
		}
		return nil, seederrors.NewStructureError(keyPath, fmt.Sprintf("unsupported scalar %s (line %d)", node.ShortTag(), node.Line))
	case yaml.MappingNode:
		sub, err := decodeYAMLMapping(node, keyPath)
		if err != nil {
			return nil, err
		}
		return Subdirectory{Description: sub}, nil
	case yaml.SequenceNode:
		names := make([]string, 0, len(node.Content))
		for _, item := range node.Content {
			item = resolveAlias(item)
			if item.Kind != yaml.ScalarNode || item.ShortTag() != "!!str" {
				return nil, seederrors.NewStructureError(keyPath, fmt.Sprintf("list entries must be strings (line %d)", item.Line))
			}
			if item.Value != "" {
				if err := validateSegment(joinKeyPath(keyPath, item.Value), item.Value); err != nil {
					return nil, err
				}
			}
			names = append(names, item.Value)
		}
		return FileList{Names: names}, nil
	}
	return nil, seederrors.NewStructureError(keyPath, fmt.Sprintf("unsupported value (line %d)", node.Line))
}
