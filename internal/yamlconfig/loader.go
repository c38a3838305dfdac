// Package yamlconfig reads puzzle manifests written in YAML:
//
//	puzzles:
//	  - name: trebuchet
//	    day: 1
//	    parts: [1, 2]
//	    input: inputs/day01.txt
//	    expect:
//	      part1: 142
//	      part2: "281"
package yamlconfig

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/adventgrid/internal/config"
	"github.com/specialistvlad/adventgrid/internal/ctxlog"
	"gopkg.in/yaml.v3"
)

type yamlManifest struct {
	Puzzles []yamlPuzzle `yaml:"puzzles"`
}

type yamlPuzzle struct {
	Name   string               `yaml:"name"`
	Day    int                  `yaml:"day"`
	Parts  []int                `yaml:"parts"`
	Input  string               `yaml:"input"`
	Inline string               `yaml:"inline"`
	Expect map[string]yaml.Node `yaml:"expect"`
}

// Loader is the YAML implementation of config.Loader.
type Loader struct{}

// NewLoader creates a new YAML manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

var _ config.Loader = (*Loader)(nil)

// Load reads the manifest at path. Unknown fields are rejected.
func (l *Loader) Load(ctx context.Context, path string) (*config.Manifest, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path", path)

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read YAML file %s: %w", path, err)
	}

	var ym yamlManifest
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&ym); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode YAML file %s: %w", path, err)
	}

	m := &config.Manifest{}
	for _, yp := range ym.Puzzles {
		p := &config.Puzzle{
			Name:      yp.Name,
			Day:       yp.Day,
			Parts:     yp.Parts,
			InputPath: config.ResolvePath(path, yp.Input),
			Input:     yp.Inline,
		}
		for key, node := range yp.Expect {
			part, err := config.ParsePartKey(key)
			if err != nil {
				return nil, fmt.Errorf("%s: puzzle %q: %w", path, yp.Name, err)
			}
			if node.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("%s: puzzle %q: answer for %s must be a scalar", path, yp.Name, key)
			}
			if p.Expect == nil {
				p.Expect = make(map[int]string)
			}
			p.Expect[part] = node.Value
		}
		m.Puzzles = append(m.Puzzles, p)
	}

	logger.Debug("YAML loading complete.", "path", path, "puzzles", len(m.Puzzles))
	return m, nil
}
