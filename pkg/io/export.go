package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/depviz/pkg/deps"
)

type document struct {
	Root   string      `json:"root,omitempty"`
	Graph  *deps.Graph `json:"graph"`
	Failed []string    `json:"failed"`
}

// WriteJSON encodes res as indented JSON and writes it to w.
// Root is informational only.
func WriteJSON(root string, res *deps.Result, w io.Writer) error {
	out := document{Root: root, Graph: deps.NewGraph(), Failed: []string{}}
	if res != nil {
		if res.Graph != nil {
			out.Graph = res.Graph
		}
		out.Failed = append(out.Failed, res.Failed...)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes res to a JSON file at path.
func ExportJSON(root string, res *deps.Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteJSON(root, res, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
