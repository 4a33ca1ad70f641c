package store

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// SettingsRecordTag is the tag the Ruby gem writes on a serialised settings
// record. A root mapping carrying it is accepted like a plain mapping.
const SettingsRecordTag = "!ruby/object:Railsui::Configuration"

const mapTag = "!!map"

var allowedScalarTags = map[string]struct{}{
	"!!str":   {},
	"!!bool":  {},
	"!!int":   {},
	"!!float": {},
	"!!null":  {},
}

// decodeSettings parses data into a generic key/value mapping, enforcing the
// shape allow-list on the node tree before any value is materialised. A
// file without a document (empty, blank or only comments) is malformed.
func decodeSettings(data []byte) (map[string]any, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var doc yaml.Node
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty settings document", ErrMalformedSettings)
		}
		return nil, fmt.Errorf("%w: %w", ErrMalformedSettings, err)
	}

	var trailing yaml.Node
	if err := dec.Decode(&trailing); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedSettings, err)
		}
		return nil, fmt.Errorf("%w: multiple documents", ErrMalformedSettings)
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 {
		return nil, fmt.Errorf("%w: unexpected document structure", ErrMalformedSettings)
	}

	root := doc.Content[0]
	if err := checkRoot(root); err != nil {
		return nil, err
	}

	out := make(map[string]any, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valueNode := root.Content[i], root.Content[i+1]

		key, err := decodeKey(keyNode)
		if err != nil {
			return nil, err
		}
		if _, dup := out[key]; dup {
			return nil, fmt.Errorf("%w: duplicate key %q (line %d)", ErrMalformedSettings, key, keyNode.Line)
		}

		if err := checkScalar(valueNode); err != nil {
			return nil, fmt.Errorf("%w (key %q)", err, key)
		}

		var value any
		if err := valueNode.Decode(&value); err != nil {
			return nil, fmt.Errorf("%w: key %q: %w", ErrMalformedSettings, key, err)
		}
		out[key] = value
	}

	return out, nil
}

func checkRoot(n *yaml.Node) error {
	if n.Kind == yaml.AliasNode || n.Anchor != "" {
		return fmt.Errorf("%w: anchors and aliases are not allowed (line %d)", ErrDisallowedType, n.Line)
	}
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: top-level %s is not a mapping (line %d)", ErrDisallowedType, kindName(n.Kind), n.Line)
	}
	if n.Tag != mapTag && n.Tag != SettingsRecordTag {
		return fmt.Errorf("%w: top-level tag %q (line %d)", ErrDisallowedType, n.Tag, n.Line)
	}
	return nil
}

func decodeKey(n *yaml.Node) (string, error) {
	if n.Kind == yaml.AliasNode || n.Anchor != "" {
		return "", fmt.Errorf("%w: anchors and aliases are not allowed (line %d)", ErrDisallowedType, n.Line)
	}
	if n.Kind != yaml.ScalarNode || n.Tag != "!!str" {
		return "", fmt.Errorf("%w: keys must be strings (line %d)", ErrMalformedSettings, n.Line)
	}
	return n.Value, nil
}

func checkScalar(n *yaml.Node) error {
	if n.Kind == yaml.AliasNode || n.Anchor != "" {
		return fmt.Errorf("%w: anchors and aliases are not allowed (line %d)", ErrDisallowedType, n.Line)
	}
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: nested %s (line %d)", ErrDisallowedType, kindName(n.Kind), n.Line)
	}
	if _, ok := allowedScalarTags[n.Tag]; !ok {
		return fmt.Errorf("%w: tag %q (line %d)", ErrDisallowedType, n.Tag, n.Line)
	}
	return nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "node"
	}
}
