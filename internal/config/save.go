package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/zjrosen/gridline/internal/grid"
)

// SaveItemsPerPage writes grid.items_per_page, keeping the rest of the file
// and its comments intact.
func SaveItemsPerPage(path string, n int) error {
	var node yaml.Node
	if err := node.Encode(n); err != nil {
		return err
	}
	return setKey(path, []string{"grid", "items_per_page"}, &node)
}

// SaveColumns writes the grid.columns schema.
func SaveColumns(path string, cols []grid.Column) error {
	if err := grid.ValidateColumns(cols); err != nil {
		return err
	}
	var node yaml.Node
	if err := node.Encode(cols); err != nil {
		return fmt.Errorf("encoding columns: %w", err)
	}
	return setKey(path, []string{"grid", "columns"}, &node)
}

// setKey replaces or inserts the value at keys and rewrites the file
// atomically.
func setKey(path string, keys []string, value *yaml.Node) error {
	data, err := os.ReadFile(path) // #nosec G304 -- path is the user's config file
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading config: %w", err)
	}

	var doc yaml.Node
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parsing config: %w", err)
		}
	}
	if doc.Kind == 0 {
		doc = yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{{Kind: yaml.MappingNode}}}
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return fmt.Errorf("parsing config: top level is not a mapping")
	}

	m := root
	for i, k := range keys {
		last := i == len(keys)-1
		child := lookup(m, k)
		switch {
		case last && child != nil:
			*child = *value
		case last:
			m.Content = append(m.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: k}, value)
		case child == nil:
			child = &yaml.Node{Kind: yaml.MappingNode}
			m.Content = append(m.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: k}, child)
			m = child
		case child.Kind != yaml.MappingNode:
			return fmt.Errorf("config key %q is not a mapping", k)
		default:
			m = child
		}
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	_ = enc.Close()
	return writeAtomic(path, buf.Bytes())
}

func lookup(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".gridline.yaml.tmp.*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	name := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(name)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(name)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(name, path); err != nil {
		_ = os.Remove(name)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
