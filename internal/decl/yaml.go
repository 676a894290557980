package decl

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type yamlFile struct {
	Package string     `yaml:"package"`
	Nonzero []yamlDecl `yaml:"nonzero"`
}

type yamlDecl struct {
	Name string `yaml:"name"`
	Lit  string `yaml:"lit,omitempty"`
	Expr string `yaml:"expr,omitempty"`
	Type string `yaml:"type,omitempty"`
	Doc  string `yaml:"doc,omitempty"`
}

// LoadYAML reads a YAML declaration file.
func LoadYAML(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read declaration file: %w", err)
	}
	return ParseYAML(data, path)
}

// ParseYAML decodes YAML declarations. Unknown fields are rejected so typos
// such as "expresion:" do not silently drop a value.
func ParseYAML(data []byte, filename string) (*File, error) {
	var raw yamlFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	// A second pass over the node tree recovers line numbers.
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	lines := itemPositions(&doc, "nonzero")

	f := &File{Package: raw.Package, Path: filename}
	for i, d := range raw.Nonzero {
		pos := Pos{Filename: filename}
		if i < len(lines) {
			pos.Line, pos.Column = lines[i][0], lines[i][1]
		}
		f.Decls = append(f.Decls, Decl{
			Name: d.Name,
			Lit:  d.Lit,
			Expr: d.Expr,
			Type: d.Type,
			Doc:  d.Doc,
			Pos:  pos,
		})
	}
	return f, nil
}

// itemPositions returns line and column of each item in the sequence stored
// under key in the top-level mapping.
func itemPositions(doc *yaml.Node, key string) [][2]int {
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil
	}
	m := doc.Content[0]
	if m.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value != key || m.Content[i+1].Kind != yaml.SequenceNode {
			continue
		}
		items := m.Content[i+1].Content
		out := make([][2]int, len(items))
		for j, item := range items {
			out[j] = [2]int{item.Line, item.Column}
		}
		return out
	}
	return nil
}
