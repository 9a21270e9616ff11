// SPDX-License-Identifier: MIT

package network

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects the file encoding of a Document.
type Format int

const (
	// FormatYAML is the default encoding.
	FormatYAML Format = iota
	// FormatJSON encodes documents as JSON.
	FormatJSON
)

// FormatFromPath picks JSON for ".json" files and YAML otherwise.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}

	return FormatYAML
}

// Decode reads a Document from r and builds the Graph.
func Decode(r io.Reader, format Format) (*Graph, error) {
	var doc Document
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	default:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	}

	return FromDocument(doc)
}

// Encode writes g as a Document to w.
func (g *Graph) Encode(w io.Writer, format Format) error {
	doc := g.Document()
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	default:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	}
}

// Load reads a graph file; the format follows the file extension.
func Load(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := Decode(f, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	if g.Name == "" {
		g.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return g, nil
}

// Save writes g to path; the format follows the file extension.
func (g *Graph) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = g.Encode(f, FormatFromPath(path)); err != nil {
		_ = f.Close()
		return fmt.Errorf("save %s: %w", path, err)
	}

	return f.Close()
}
